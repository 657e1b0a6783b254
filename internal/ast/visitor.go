package ast

// Visitor is the double-dispatch interface over every node family, kept
// as a flat set of one-method-per-concrete-type, mirroring the
// teacher's `Accept(v Visitor)` style generalized to operate over
// (Arena, NodeID) pairs instead of bare pointers.
type Visitor interface {
	VisitModuleDecl(a *Arena, id NodeID, n *ModuleDecl)
	VisitImportDecl(a *Arena, id NodeID, n *ImportDecl)
	VisitAggregateDecl(a *Arena, id NodeID, n *AggregateDecl)
	VisitEnumDecl(a *Arena, id NodeID, n *EnumDecl)
	VisitEnumMember(a *Arena, id NodeID, n *EnumMember)
	VisitTemplateDecl(a *Arena, id NodeID, n *TemplateDecl)
	VisitTemplateInstanceDecl(a *Arena, id NodeID, n *TemplateInstanceDecl)
	VisitMixinDecl(a *Arena, id NodeID, n *MixinDecl)
	VisitFuncDecl(a *Arena, id NodeID, n *FuncDecl)
	VisitCtorDecl(a *Arena, id NodeID, n *CtorDecl)
	VisitDtorDecl(a *Arena, id NodeID, n *DtorDecl)
	VisitPostblitDecl(a *Arena, id NodeID, n *PostblitDecl)
	VisitStaticCtorDecl(a *Arena, id NodeID, n *StaticCtorDecl)
	VisitSharedStaticCtorDecl(a *Arena, id NodeID, n *SharedStaticCtorDecl)
	VisitStaticDtorDecl(a *Arena, id NodeID, n *StaticDtorDecl)
	VisitSharedStaticDtorDecl(a *Arena, id NodeID, n *SharedStaticDtorDecl)
	VisitNewDecl(a *Arena, id NodeID, n *NewDecl)
	VisitInvariantDecl(a *Arena, id NodeID, n *InvariantDecl)
	VisitUnittestDecl(a *Arena, id NodeID, n *UnittestDecl)
	VisitVarDecl(a *Arena, id NodeID, n *VarDecl)
	VisitAliasDecl(a *Arena, id NodeID, n *AliasDecl)
	VisitAliasThisDecl(a *Arena, id NodeID, n *AliasThisDecl)
	VisitStorageClassWrapperDecl(a *Arena, id NodeID, n *StorageClassWrapperDecl)
	VisitLinkageWrapperDecl(a *Arena, id NodeID, n *LinkageWrapperDecl)
	VisitProtectionWrapperDecl(a *Arena, id NodeID, n *ProtectionWrapperDecl)
	VisitAlignWrapperDecl(a *Arena, id NodeID, n *AlignWrapperDecl)
	VisitDeprecatedWrapperDecl(a *Arena, id NodeID, n *DeprecatedWrapperDecl)
	VisitUDAWrapperDecl(a *Arena, id NodeID, n *UDAWrapperDecl)
	VisitUserAttributeDecl(a *Arena, id NodeID, n *UserAttributeDecl)
	VisitDeclBlock(a *Arena, id NodeID, n *DeclBlock)
	VisitConditionalDecl(a *Arena, id NodeID, n *ConditionalDecl)
	VisitEmptyDecl(a *Arena, id NodeID, n *EmptyDecl)

	VisitBlockStmt(a *Arena, id NodeID, n *BlockStmt)
	VisitExprStmt(a *Arena, id NodeID, n *ExprStmt)
	VisitDeclStmt(a *Arena, id NodeID, n *DeclStmt)
	VisitIfStmt(a *Arena, id NodeID, n *IfStmt)
	VisitWhileStmt(a *Arena, id NodeID, n *WhileStmt)
	VisitDoStmt(a *Arena, id NodeID, n *DoStmt)
	VisitForStmt(a *Arena, id NodeID, n *ForStmt)
	VisitForeachStmt(a *Arena, id NodeID, n *ForeachStmt)
	VisitSwitchStmt(a *Arena, id NodeID, n *SwitchStmt)
	VisitCaseStmt(a *Arena, id NodeID, n *CaseStmt)
	VisitDefaultStmt(a *Arena, id NodeID, n *DefaultStmt)
	VisitBreakStmt(a *Arena, id NodeID, n *BreakStmt)
	VisitContinueStmt(a *Arena, id NodeID, n *ContinueStmt)
	VisitGotoStmt(a *Arena, id NodeID, n *GotoStmt)
	VisitReturnStmt(a *Arena, id NodeID, n *ReturnStmt)
	VisitLabeledStmt(a *Arena, id NodeID, n *LabeledStmt)
	VisitScopeGuardStmt(a *Arena, id NodeID, n *ScopeGuardStmt)
	VisitTryStmt(a *Arena, id NodeID, n *TryStmt)
	VisitThrowStmt(a *Arena, id NodeID, n *ThrowStmt)
	VisitWithStmt(a *Arena, id NodeID, n *WithStmt)
	VisitSynchronizedStmt(a *Arena, id NodeID, n *SynchronizedStmt)
	VisitAsmStmt(a *Arena, id NodeID, n *AsmStmt)
	VisitPragmaStmt(a *Arena, id NodeID, n *PragmaStmt)
	VisitStaticIfStmt(a *Arena, id NodeID, n *StaticIfStmt)
	VisitStaticAssertStmt(a *Arena, id NodeID, n *StaticAssertStmt)
	VisitStaticForeachStmt(a *Arena, id NodeID, n *StaticForeachStmt)
	VisitConditionalStmt(a *Arena, id NodeID, n *ConditionalStmt)
	VisitEmptyStmt(a *Arena, id NodeID, n *EmptyStmt)

	VisitIdentifierExpr(a *Arena, id NodeID, n *IdentifierExpr)
	VisitScopeExpr(a *Arena, id NodeID, n *ScopeExpr)
	VisitBinaryExpr(a *Arena, id NodeID, n *BinaryExpr)
	VisitUnaryExpr(a *Arena, id NodeID, n *UnaryExpr)
	VisitPostfixExpr(a *Arena, id NodeID, n *PostfixExpr)
	VisitAssignExpr(a *Arena, id NodeID, n *AssignExpr)
	VisitConditionalExpr(a *Arena, id NodeID, n *ConditionalExpr)
	VisitCallExpr(a *Arena, id NodeID, n *CallExpr)
	VisitIndexExpr(a *Arena, id NodeID, n *IndexExpr)
	VisitSliceExpr(a *Arena, id NodeID, n *SliceExpr)
	VisitMemberExpr(a *Arena, id NodeID, n *MemberExpr)
	VisitCastExpr(a *Arena, id NodeID, n *CastExpr)
	VisitNewExpr(a *Arena, id NodeID, n *NewExpr)
	VisitTypeidExpr(a *Arena, id NodeID, n *TypeidExpr)
	VisitTraitsExpr(a *Arena, id NodeID, n *TraitsExpr)
	VisitIsExpr(a *Arena, id NodeID, n *IsExpr)
	VisitAssertExpr(a *Arena, id NodeID, n *AssertExpr)
	VisitMixinExpr(a *Arena, id NodeID, n *MixinExpr)
	VisitImportExpr(a *Arena, id NodeID, n *ImportExpr)
	VisitArrayLiteralExpr(a *Arena, id NodeID, n *ArrayLiteralExpr)
	VisitAssocArrayLiteralExpr(a *Arena, id NodeID, n *AssocArrayLiteralExpr)
	VisitFunctionLiteralExpr(a *Arena, id NodeID, n *FunctionLiteralExpr)
	VisitThisExpr(a *Arena, id NodeID, n *ThisExpr)
	VisitSuperExpr(a *Arena, id NodeID, n *SuperExpr)
	VisitDollarExpr(a *Arena, id NodeID, n *DollarExpr)
	VisitTypeExpr(a *Arena, id NodeID, n *TypeExpr)
	VisitIntLiteralExpr(a *Arena, id NodeID, n *IntLiteralExpr)
	VisitFloatLiteralExpr(a *Arena, id NodeID, n *FloatLiteralExpr)
	VisitCharLiteralExpr(a *Arena, id NodeID, n *CharLiteralExpr)
	VisitStringLiteralExpr(a *Arena, id NodeID, n *StringLiteralExpr)
	VisitBoolLiteralExpr(a *Arena, id NodeID, n *BoolLiteralExpr)
	VisitNullLiteralExpr(a *Arena, id NodeID, n *NullLiteralExpr)
	VisitSpecialTokenExpr(a *Arena, id NodeID, n *SpecialTokenExpr)

	VisitBasicType(a *Arena, id NodeID, n *BasicType)
	VisitIdentifierType(a *Arena, id NodeID, n *IdentifierType)
	VisitPointerType(a *Arena, id NodeID, n *PointerType)
	VisitStaticArrayType(a *Arena, id NodeID, n *StaticArrayType)
	VisitDynamicArrayType(a *Arena, id NodeID, n *DynamicArrayType)
	VisitAssociativeArrayType(a *Arena, id NodeID, n *AssociativeArrayType)
	VisitFunctionType(a *Arena, id NodeID, n *FunctionType)
	VisitDelegateType(a *Arena, id NodeID, n *DelegateType)
	VisitVectorType(a *Arena, id NodeID, n *VectorType)
	VisitTypeofType(a *Arena, id NodeID, n *TypeofType)
	VisitTypeConstructorType(a *Arena, id NodeID, n *TypeConstructorType)
	VisitTraitsType(a *Arena, id NodeID, n *TraitsType)

	VisitVoidInitializer(a *Arena, id NodeID, n *VoidInitializer)
	VisitExprInitializer(a *Arena, id NodeID, n *ExprInitializer)
	VisitStructInitializer(a *Arena, id NodeID, n *StructInitializer)
	VisitArrayInitializer(a *Arena, id NodeID, n *ArrayInitializer)

	VisitParameter(a *Arena, id NodeID, n *Parameter)
	VisitTemplateParameter(a *Arena, id NodeID, n *TemplateParameter)
	VisitForeachParameter(a *Arena, id NodeID, n *ForeachParameter)
	VisitCatchClause(a *Arena, id NodeID, n *CatchClause)

	VisitError(a *Arena, id NodeID, n Node)
}

func dispatch(a *Arena, id NodeID, n Node, v Visitor) {
	switch t := n.(type) {
	case *ModuleDecl:
		v.VisitModuleDecl(a, id, t)
	case *ImportDecl:
		v.VisitImportDecl(a, id, t)
	case *AggregateDecl:
		v.VisitAggregateDecl(a, id, t)
	case *EnumDecl:
		v.VisitEnumDecl(a, id, t)
	case *EnumMember:
		v.VisitEnumMember(a, id, t)
	case *TemplateDecl:
		v.VisitTemplateDecl(a, id, t)
	case *TemplateInstanceDecl:
		v.VisitTemplateInstanceDecl(a, id, t)
	case *MixinDecl:
		v.VisitMixinDecl(a, id, t)
	case *FuncDecl:
		v.VisitFuncDecl(a, id, t)
	case *CtorDecl:
		v.VisitCtorDecl(a, id, t)
	case *DtorDecl:
		v.VisitDtorDecl(a, id, t)
	case *PostblitDecl:
		v.VisitPostblitDecl(a, id, t)
	case *StaticCtorDecl:
		v.VisitStaticCtorDecl(a, id, t)
	case *SharedStaticCtorDecl:
		v.VisitSharedStaticCtorDecl(a, id, t)
	case *StaticDtorDecl:
		v.VisitStaticDtorDecl(a, id, t)
	case *SharedStaticDtorDecl:
		v.VisitSharedStaticDtorDecl(a, id, t)
	case *NewDecl:
		v.VisitNewDecl(a, id, t)
	case *InvariantDecl:
		v.VisitInvariantDecl(a, id, t)
	case *UnittestDecl:
		v.VisitUnittestDecl(a, id, t)
	case *VarDecl:
		v.VisitVarDecl(a, id, t)
	case *AliasDecl:
		v.VisitAliasDecl(a, id, t)
	case *AliasThisDecl:
		v.VisitAliasThisDecl(a, id, t)
	case *StorageClassWrapperDecl:
		v.VisitStorageClassWrapperDecl(a, id, t)
	case *LinkageWrapperDecl:
		v.VisitLinkageWrapperDecl(a, id, t)
	case *ProtectionWrapperDecl:
		v.VisitProtectionWrapperDecl(a, id, t)
	case *AlignWrapperDecl:
		v.VisitAlignWrapperDecl(a, id, t)
	case *DeprecatedWrapperDecl:
		v.VisitDeprecatedWrapperDecl(a, id, t)
	case *UDAWrapperDecl:
		v.VisitUDAWrapperDecl(a, id, t)
	case *UserAttributeDecl:
		v.VisitUserAttributeDecl(a, id, t)
	case *DeclBlock:
		v.VisitDeclBlock(a, id, t)
	case *ConditionalDecl:
		v.VisitConditionalDecl(a, id, t)
	case *EmptyDecl:
		v.VisitEmptyDecl(a, id, t)

	case *BlockStmt:
		v.VisitBlockStmt(a, id, t)
	case *ExprStmt:
		v.VisitExprStmt(a, id, t)
	case *DeclStmt:
		v.VisitDeclStmt(a, id, t)
	case *IfStmt:
		v.VisitIfStmt(a, id, t)
	case *WhileStmt:
		v.VisitWhileStmt(a, id, t)
	case *DoStmt:
		v.VisitDoStmt(a, id, t)
	case *ForStmt:
		v.VisitForStmt(a, id, t)
	case *ForeachStmt:
		v.VisitForeachStmt(a, id, t)
	case *SwitchStmt:
		v.VisitSwitchStmt(a, id, t)
	case *CaseStmt:
		v.VisitCaseStmt(a, id, t)
	case *DefaultStmt:
		v.VisitDefaultStmt(a, id, t)
	case *BreakStmt:
		v.VisitBreakStmt(a, id, t)
	case *ContinueStmt:
		v.VisitContinueStmt(a, id, t)
	case *GotoStmt:
		v.VisitGotoStmt(a, id, t)
	case *ReturnStmt:
		v.VisitReturnStmt(a, id, t)
	case *LabeledStmt:
		v.VisitLabeledStmt(a, id, t)
	case *ScopeGuardStmt:
		v.VisitScopeGuardStmt(a, id, t)
	case *TryStmt:
		v.VisitTryStmt(a, id, t)
	case *ThrowStmt:
		v.VisitThrowStmt(a, id, t)
	case *WithStmt:
		v.VisitWithStmt(a, id, t)
	case *SynchronizedStmt:
		v.VisitSynchronizedStmt(a, id, t)
	case *AsmStmt:
		v.VisitAsmStmt(a, id, t)
	case *PragmaStmt:
		v.VisitPragmaStmt(a, id, t)
	case *StaticIfStmt:
		v.VisitStaticIfStmt(a, id, t)
	case *StaticAssertStmt:
		v.VisitStaticAssertStmt(a, id, t)
	case *StaticForeachStmt:
		v.VisitStaticForeachStmt(a, id, t)
	case *ConditionalStmt:
		v.VisitConditionalStmt(a, id, t)
	case *EmptyStmt:
		v.VisitEmptyStmt(a, id, t)

	case *IdentifierExpr:
		v.VisitIdentifierExpr(a, id, t)
	case *ScopeExpr:
		v.VisitScopeExpr(a, id, t)
	case *BinaryExpr:
		v.VisitBinaryExpr(a, id, t)
	case *UnaryExpr:
		v.VisitUnaryExpr(a, id, t)
	case *PostfixExpr:
		v.VisitPostfixExpr(a, id, t)
	case *AssignExpr:
		v.VisitAssignExpr(a, id, t)
	case *ConditionalExpr:
		v.VisitConditionalExpr(a, id, t)
	case *CallExpr:
		v.VisitCallExpr(a, id, t)
	case *IndexExpr:
		v.VisitIndexExpr(a, id, t)
	case *SliceExpr:
		v.VisitSliceExpr(a, id, t)
	case *MemberExpr:
		v.VisitMemberExpr(a, id, t)
	case *CastExpr:
		v.VisitCastExpr(a, id, t)
	case *NewExpr:
		v.VisitNewExpr(a, id, t)
	case *TypeidExpr:
		v.VisitTypeidExpr(a, id, t)
	case *TraitsExpr:
		v.VisitTraitsExpr(a, id, t)
	case *IsExpr:
		v.VisitIsExpr(a, id, t)
	case *AssertExpr:
		v.VisitAssertExpr(a, id, t)
	case *MixinExpr:
		v.VisitMixinExpr(a, id, t)
	case *ImportExpr:
		v.VisitImportExpr(a, id, t)
	case *ArrayLiteralExpr:
		v.VisitArrayLiteralExpr(a, id, t)
	case *AssocArrayLiteralExpr:
		v.VisitAssocArrayLiteralExpr(a, id, t)
	case *FunctionLiteralExpr:
		v.VisitFunctionLiteralExpr(a, id, t)
	case *ThisExpr:
		v.VisitThisExpr(a, id, t)
	case *SuperExpr:
		v.VisitSuperExpr(a, id, t)
	case *DollarExpr:
		v.VisitDollarExpr(a, id, t)
	case *TypeExpr:
		v.VisitTypeExpr(a, id, t)
	case *IntLiteralExpr:
		v.VisitIntLiteralExpr(a, id, t)
	case *FloatLiteralExpr:
		v.VisitFloatLiteralExpr(a, id, t)
	case *CharLiteralExpr:
		v.VisitCharLiteralExpr(a, id, t)
	case *StringLiteralExpr:
		v.VisitStringLiteralExpr(a, id, t)
	case *BoolLiteralExpr:
		v.VisitBoolLiteralExpr(a, id, t)
	case *NullLiteralExpr:
		v.VisitNullLiteralExpr(a, id, t)
	case *SpecialTokenExpr:
		v.VisitSpecialTokenExpr(a, id, t)

	case *BasicType:
		v.VisitBasicType(a, id, t)
	case *IdentifierType:
		v.VisitIdentifierType(a, id, t)
	case *PointerType:
		v.VisitPointerType(a, id, t)
	case *StaticArrayType:
		v.VisitStaticArrayType(a, id, t)
	case *DynamicArrayType:
		v.VisitDynamicArrayType(a, id, t)
	case *AssociativeArrayType:
		v.VisitAssociativeArrayType(a, id, t)
	case *FunctionType:
		v.VisitFunctionType(a, id, t)
	case *DelegateType:
		v.VisitDelegateType(a, id, t)
	case *VectorType:
		v.VisitVectorType(a, id, t)
	case *TypeofType:
		v.VisitTypeofType(a, id, t)
	case *TypeConstructorType:
		v.VisitTypeConstructorType(a, id, t)
	case *TraitsType:
		v.VisitTraitsType(a, id, t)

	case *VoidInitializer:
		v.VisitVoidInitializer(a, id, t)
	case *ExprInitializer:
		v.VisitExprInitializer(a, id, t)
	case *StructInitializer:
		v.VisitStructInitializer(a, id, t)
	case *ArrayInitializer:
		v.VisitArrayInitializer(a, id, t)

	case *Parameter:
		v.VisitParameter(a, id, t)
	case *TemplateParameter:
		v.VisitTemplateParameter(a, id, t)
	case *ForeachParameter:
		v.VisitForeachParameter(a, id, t)
	case *CatchClause:
		v.VisitCatchClause(a, id, t)

	default:
		v.VisitError(a, id, n)
	}
}
