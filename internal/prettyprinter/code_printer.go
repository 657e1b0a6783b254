// Package prettyprinter renders a parsed Arena back into D source text.
// CodePrinter implements ast.Visitor and is driven through Arena.Accept,
// generalizing the teacher's buffer/indent/column CodePrinter to this
// grammar's 17-level precedence ladder (config.PrecedenceTable /
// config.AssociativityOf) instead of a separate string-keyed operator
// table.
package prettyprinter

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/mcgru/dparse/internal/ast"
	"github.com/mcgru/dparse/internal/config"
	"github.com/mcgru/dparse/internal/token"
)

// CodePrinter walks an Arena and writes D-like source text to an
// internal buffer. It is not safe for concurrent use: one CodePrinter
// renders one tree at a time, mirroring the one-Arena-per-Parser rule.
type CodePrinter struct {
	buf       bytes.Buffer
	indent    int
	lineWidth int
	column    int

	// Expression-printing context, threaded through printExpr rather
	// than as Visit method parameters since the Visitor interface's
	// signature is fixed.
	parentPrec config.Precedence
	isRight    bool
}

// NewCodePrinter returns a CodePrinter with the teacher's default width.
func NewCodePrinter() *CodePrinter {
	return &CodePrinter{indent: 0, lineWidth: 100, column: 0}
}

// NewCodePrinterWithWidth returns a CodePrinter targeting the given
// line width. The width is advisory only: this printer never reflows a
// single expression across lines, it only uses indent/brace placement
// the way the teacher's does for blocks.
func NewCodePrinterWithWidth(width int) *CodePrinter {
	return &CodePrinter{indent: 0, lineWidth: width, column: 0}
}

func (p *CodePrinter) SetLineWidth(width int) { p.lineWidth = width }

func (p *CodePrinter) write(s string) {
	p.buf.WriteString(s)
	if nl := strings.LastIndexByte(s, '\n'); nl >= 0 {
		p.column = len(s) - nl - 1
	} else {
		p.column += len(s)
	}
}

func (p *CodePrinter) writeIndent() {
	for i := 0; i < p.indent; i++ {
		p.buf.WriteString("    ")
	}
	p.column = p.indent * 4
}

// Print renders an entire module: its leading module-level UDAs, its
// `module` header, and every top-level declaration.
func (p *CodePrinter) Print(a *ast.Arena, m *ast.Module) string {
	p.buf.Reset()
	for _, id := range m.UserAttributes {
		a.Accept(id, p)
		p.write("\n")
	}
	if m.ModuleDecl != ast.NilID {
		a.Accept(m.ModuleDecl, p)
		p.write("\n")
	}
	for _, id := range m.Decls {
		p.writeIndent()
		a.Accept(id, p)
		p.write("\n")
	}
	return p.buf.String()
}

// PrintNode renders a single node in isolation: useful for tests and
// tools that want the source form of one declaration, statement, or
// expression without a surrounding module.
func (p *CodePrinter) PrintNode(a *ast.Arena, id ast.NodeID) string {
	p.buf.Reset()
	a.Accept(id, p)
	return p.buf.String()
}

// --- shared helpers ---

func qualifiedName(packages []*token.Identifier, name *token.Identifier) string {
	var sb strings.Builder
	for _, pkg := range packages {
		sb.WriteString(pkg.Name)
		sb.WriteByte('.')
	}
	if name != nil {
		sb.WriteString(name.Name)
	}
	return sb.String()
}

func identNames(ids []*token.Identifier) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.Name
	}
	return out
}

func identOr(id *token.Identifier, fallback string) string {
	if id == nil {
		return fallback
	}
	return id.Name
}

// printType renders a type node inline (no indent, no trailing
// newline): every Visit*Type method assumes this calling convention.
func (p *CodePrinter) printType(a *ast.Arena, id ast.NodeID) {
	if id == ast.NilID {
		return
	}
	a.Accept(id, p)
}

// printExpr renders an expression node, parenthesizing it when its
// operator binds looser than parentPrec demands, or when same-precedence
// associativity requires it — the same rule the parser's checkParens
// consults, reused here instead of duplicated as a string table.
func (p *CodePrinter) printExpr(a *ast.Arena, id ast.NodeID, parentPrec config.Precedence, isRight bool) {
	if id == ast.NilID {
		return
	}
	savedPrec, savedRight := p.parentPrec, p.isRight
	p.parentPrec, p.isRight = parentPrec, isRight
	a.Accept(id, p)
	p.parentPrec, p.isRight = savedPrec, savedRight
}

// printInit renders an initializer node inline.
func (p *CodePrinter) printInit(a *ast.Arena, id ast.NodeID) {
	if id == ast.NilID {
		return
	}
	a.Accept(id, p)
}

// printArgs renders a parenthesized Argument list.
func (p *CodePrinter) printArgs(a *ast.Arena, args []ast.Argument) {
	p.write("(")
	for i, arg := range args {
		if i > 0 {
			p.write(", ")
		}
		if arg.Spread {
			p.write("...")
		}
		if arg.Name != nil {
			p.write(arg.Name.Name)
			p.write(": ")
		}
		p.printExpr(a, arg.Value, config.PrecAssign, false)
	}
	p.write(")")
}

// printNodeList renders a comma-joined list of bare NodeIDs as
// expressions (template arguments, index lists, ...).
func (p *CodePrinter) printNodeList(a *ast.Arena, ids []ast.NodeID, asType bool) {
	for i, id := range ids {
		if i > 0 {
			p.write(", ")
		}
		if asType {
			p.printType(a, id)
		} else {
			p.printExpr(a, id, config.PrecAssign, false)
		}
	}
}

// printParams renders a parenthesized parameter list.
func (p *CodePrinter) printParams(a *ast.Arena, params []ast.NodeID) {
	p.write("(")
	for i, id := range params {
		if i > 0 {
			p.write(", ")
		}
		a.Accept(id, p)
	}
	p.write(")")
}

// printBody renders a statement used as a control-flow body: a block
// statement is appended inline after a leading space (`if (c) { ... }`),
// anything else is placed on its own indented line.
func (p *CodePrinter) printBody(a *ast.Arena, id ast.NodeID) {
	if id == ast.NilID {
		p.write(";")
		return
	}
	if blk, ok := a.Get(id).(*ast.BlockStmt); ok {
		p.write(" ")
		p.printBlock(a, blk)
		return
	}
	p.write("\n")
	p.indent++
	p.writeIndent()
	a.Accept(id, p)
	p.indent--
}

// printBlock renders a `{ stmt stmt ... }` block's full text,
// including both braces, assuming the opening brace starts at the
// current column.
func (p *CodePrinter) printBlock(a *ast.Arena, n *ast.BlockStmt) {
	p.write("{\n")
	p.indent++
	for _, s := range n.Stmts {
		p.writeIndent()
		a.Accept(s, p)
		p.write("\n")
	}
	p.indent--
	p.writeIndent()
	p.write("}")
}

// printDeclBody renders a run of declarations as a braced block, used
// by every wrapper/aggregate/template decl that groups declarations.
func (p *CodePrinter) printDeclBody(a *ast.Arena, decls []ast.NodeID) {
	p.write("{\n")
	p.indent++
	for _, d := range decls {
		p.writeIndent()
		a.Accept(d, p)
		p.write("\n")
	}
	p.indent--
	p.writeIndent()
	p.write("}")
}

// printWrapped renders `prefix decl` when exactly one declaration is
// wrapped, or `prefix { decl decl ... }` otherwise — the shape every
// attribute-wrapper decl shares, mirroring wrapDecls' own collapsing
// rule in the parser.
func (p *CodePrinter) printWrapped(a *ast.Arena, prefix string, decls []ast.NodeID) {
	p.write(prefix)
	if len(decls) == 1 {
		p.write(" ")
		a.Accept(decls[0], p)
		return
	}
	p.write(" ")
	p.printDeclBody(a, decls)
}

// storageClassOrder fixes a deterministic print order for a
// config.Set's member keywords; the four safety-group keywords print
// as UDA-style `@name` the way D's grammar actually spells them.
var storageClassOrder = []token.Kind{
	token.STATIC, token.FINAL, token.OVERRIDE, token.ABSTRACT,
	token.CONST, token.IMMUTABLE, token.SHARED, token.INOUT,
	token.SCOPE, token.SYNCHRONIZED, token.NOTHROW, token.PURE,
	token.REF, token.GSHARED, token.RETURN_ATTR, token.LAZY,
	token.IN, token.OUT, token.AUTO, token.MANIFEST,
	token.DISABLE, token.PROPERTY, token.NOGC,
	token.SAFE, token.TRUSTED, token.SYSTEM, token.LIVE, token.FUTURE,
}

var atPrefixed = map[token.Kind]bool{
	token.DISABLE: true, token.PROPERTY: true, token.NOGC: true,
	token.SAFE: true, token.TRUSTED: true, token.SYSTEM: true,
	token.LIVE: true, token.FUTURE: true,
}

func storageClassKeywords(s config.Set) []string {
	var out []string
	for _, k := range storageClassOrder {
		bit, ok := config.KindToStorageClass[k]
		if !ok || !s.Has(bit) {
			continue
		}
		if atPrefixed[k] {
			out = append(out, "@"+k.String())
		} else {
			out = append(out, k.String())
		}
	}
	return out
}

func (p *CodePrinter) writeStorageClass(s config.Set) {
	for _, kw := range storageClassKeywords(s) {
		p.write(kw)
		p.write(" ")
	}
}

func (p *CodePrinter) writeUDAs(a *ast.Arena, udas []ast.NodeID) {
	for _, u := range udas {
		p.write("@")
		p.printExpr(a, u, config.PrecPostfix, false)
		p.write(" ")
	}
}

func protectionKeyword(level ast.Protection) string {
	switch level {
	case ast.ProtPrivate:
		return "private"
	case ast.ProtPackage:
		return "package"
	case ast.ProtProtected:
		return "protected"
	case ast.ProtPublic:
		return "public"
	case ast.ProtExport:
		return "export"
	default:
		return ""
	}
}

func linkageKeyword(info ast.LinkageInfo) string {
	var sb strings.Builder
	sb.WriteString("extern(")
	switch info.Kind {
	case ast.LinkageC:
		sb.WriteString("C")
	case ast.LinkageCpp:
		sb.WriteString("C++")
		switch info.CppMangle {
		case ast.CppMangleClass:
			sb.WriteString(", class")
		case ast.CppMangleStruct:
			sb.WriteString(", struct")
		}
	case ast.LinkageWindows:
		sb.WriteString("Windows")
	case ast.LinkagePascal:
		sb.WriteString("Pascal")
	case ast.LinkageObjC:
		sb.WriteString("Objective-C")
	case ast.LinkageSystem:
		sb.WriteString("System")
	default:
		sb.WriteString("D")
	}
	for _, ns := range info.Namespaces {
		sb.WriteString(", ")
		sb.WriteString(ns.Name)
	}
	sb.WriteString(")")
	return sb.String()
}

var aggregateTagKeyword = map[ast.AggregateTag]string{
	ast.TagStruct:    "struct",
	ast.TagUnion:     "union",
	ast.TagClass:     "class",
	ast.TagInterface: "interface",
}

func formatIntLiteral(n *ast.IntLiteralExpr) string {
	if n.Big != nil {
		return n.Big.String()
	}
	if n.Unsigned {
		return strconv.FormatUint(uint64(n.Value), 10) + "u"
	}
	return strconv.FormatInt(n.Value, 10)
}

func formatFloatLiteral(n *ast.FloatLiteralExpr) string {
	return strconv.FormatFloat(n.Value, 'g', -1, 64)
}

func formatStringLiteral(n *ast.StringLiteralExpr) string {
	var sb strings.Builder
	for i, part := range n.Parts {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte('"')
		sb.WriteString(part)
		sb.WriteByte('"')
	}
	if n.Postfix != 0 {
		sb.WriteByte(n.Postfix)
	}
	return sb.String()
}

func formatCharLiteral(n *ast.CharLiteralExpr) string {
	return fmt.Sprintf("'%c'", n.Value)
}
