package ast

import (
	"bytes"
	"fmt"
	"strings"
)

// String renders nodes in a compact debug syntax. The output is for humans
// (logs, golden files, the tarnlower tool); it is not parsed back.

func (r *SymRef) String() string { return r.Sym.UniqName() }

func (l *IntLit) String() string { return fmt.Sprintf("%d", l.Value) }

func (c *Call) String() string {
	return c.Name + "(" + joinExprs(c.Args) + ")"
}

func (z *Zip) String() string {
	return "zip(" + joinExprs(z.Args) + ")"
}

func (s *Spread) String() string {
	return "(..." + s.Tuple.String() + ")"
}

func (t *TupleIndex) String() string {
	return fmt.Sprintf("%s[%d]", t.Tuple, t.Index)
}

func (t *TuplePattern) String() string {
	return "(" + joinExprs(t.Elems) + ")"
}

func joinExprs(es []Expr) string {
	strs := make([]string, len(es))
	for i, e := range es {
		strs[i] = e.String()
	}
	return strings.Join(strs, ", ")
}

func (d *Decl) String() string   { return "var " + d.Sym.UniqName() }
func (a *Assign) String() string { return a.LHS.UniqName() + " = " + a.RHS.String() }
func (d *Defer) String() string  { return "defer " + d.Call.String() }
func (l *Label) String() string  { return l.Sym.UniqName() + ":" }
func (*Break) String() string    { return "break" }
func (*Continue) String() string { return "continue" }
func (*Return) String() string   { return "return" }
func (e *ExprStmt) String() string {
	return e.X.String()
}

func (b *Block) String() string {
	var buf bytes.Buffer
	writeBlock(&buf, b, 0)
	return buf.String()
}

func (l *Loop) String() string {
	var buf bytes.Buffer
	writeStmt(&buf, l, 0)
	return buf.String()
}

func writeBlock(buf *bytes.Buffer, b *Block, depth int) {
	indent(buf, depth)
	buf.WriteString("{\n")
	for _, s := range b.Stmts {
		writeStmt(buf, s, depth+1)
	}
	indent(buf, depth)
	buf.WriteString("}\n")
}

func writeStmt(buf *bytes.Buffer, s Stmt, depth int) {
	switch s := s.(type) {
	case *Block:
		writeBlock(buf, s, depth)
	case *Loop:
		indent(buf, depth)
		buf.WriteString("loop")
		for _, tag := range s.tags() {
			buf.WriteString(" [" + tag + "]")
		}
		buf.WriteString("\n")
		writeBlock(buf, s.Body, depth)
	default:
		indent(buf, depth)
		buf.WriteString(s.String())
		buf.WriteString("\n")
	}
}

func (l *Loop) tags() []string {
	var tags []string
	if l.zippered {
		tags = append(tags, "zip")
	}
	if l.orderFree {
		tags = append(tags, "order-free")
	}
	if l.index != nil && l.index.Sym.HasFlag(FlagTaskIndex) {
		tags = append(tags, "task")
	}
	if l.synthesized {
		tags = append(tags, "synthesized")
	}
	if l.loopExpr {
		tags = append(tags, "expr")
	}
	return tags
}

func indent(buf *bytes.Buffer, depth int) {
	for i := 0; i < depth; i++ {
		buf.WriteString("  ")
	}
}
