// Command tarnlower lowers a selection of loop forms and prints the result,
// for inspecting what the lowering stage hands to later passes.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/fatih/color"

	"github.com/tarnlang/tarn/ast"
	"github.com/tarnlang/tarn/internal/ice"
	"github.com/tarnlang/tarn/lower"
	"github.com/tarnlang/tarn/protocol"
)

const (
	Usage = `tarnlower prints the canonical lowered form of the loop variants.

Usage:

  tarnlower [options]

Options:

`
)

var (
	noOpt      bool
	configPath string
	logFile    string
)

func init() {
	flag.BoolVar(&noOpt, "noopt", false, "Disable the direct range-iteration rewrite")
	flag.StringVar(&configPath, "config", "", "Read lowering config from YAML file")
	flag.StringVar(&logFile, "log", "", "Write lowering trace to file")
}

type demo struct {
	name  string
	build func(l *lower.Lowerer) *ast.Block
}

func demos() []demo {
	rng := func(lo, hi int64) ast.Expr {
		return ast.NewCall(protocol.BuildBoundedRange,
			&ast.IntLit{Value: lo}, &ast.IntLit{Value: hi})
	}
	return []demo{
		{"for i in 1..10", func(l *lower.Lowerer) *ast.Block {
			i := ast.NewSymbol("i")
			body := ast.NewBlock(&ast.ExprStmt{X: ast.NewCall("use", i.Ref())})
			return l.For(i.Ref(), rng(1, 10), body, false, false)
		}},
		{"for i in 1..10 by 2", func(l *lower.Lowerer) *ast.Block {
			i := ast.NewSymbol("i")
			body := ast.NewBlock(&ast.ExprStmt{X: ast.NewCall("use", i.Ref())})
			strided := ast.NewCall(protocol.RangeBy, rng(1, 10), &ast.IntLit{Value: 2})
			return l.For(i.Ref(), strided, body, false, false)
		}},
		{"foreach (i, j) in zip(1..5, 10..50 by 10)", func(l *lower.Lowerer) *ast.Block {
			i, j := ast.NewSymbol("i"), ast.NewSymbol("j")
			pat := &ast.TuplePattern{Elems: []ast.Expr{i.Ref(), j.Ref()}}
			src := &ast.Zip{Args: []ast.Expr{
				rng(1, 5),
				ast.NewCall(protocol.RangeBy, rng(10, 50), &ast.IntLit{Value: 10}),
			}}
			body := ast.NewBlock(&ast.ExprStmt{X: ast.NewCall("use", i.Ref(), j.Ref())})
			return l.Foreach(pat, src, nil, body, true, false)
		}},
		{"cofor t in 1..8", func(l *lower.Lowerer) *ast.Block {
			t := ast.NewSymbol("t")
			body := ast.NewBlock(&ast.ExprStmt{X: ast.NewCall("spawnBody", t.Ref())})
			return l.Cofor(t.Ref(), rng(1, 8), body, false)
		}},
		{"for pair in zip((...t))", func(l *lower.Lowerer) *ast.Block {
			pair := ast.NewSymbol("pair")
			t := ast.NewSymbol("t")
			src := &ast.Zip{Args: []ast.Expr{&ast.Spread{Tuple: t.Ref()}}}
			body := ast.NewBlock(&ast.ExprStmt{X: ast.NewCall("use", pair.Ref())})
			return l.For(pair.Ref(), src, body, true, false)
		}},
	}
}

func main() {
	flag.Parse()
	if flag.NArg() > 0 {
		fmt.Fprintf(os.Stderr, Usage)
		flag.PrintDefaults()
		os.Exit(0)
	}

	cfg := lower.FromEnv()
	if configPath != "" {
		f, err := os.Open(configPath)
		if err != nil {
			log.Fatalf("Cannot open config %s: %v", configPath, err)
		}
		cfg, err = lower.FromYAML(f)
		f.Close()
		if err != nil {
			log.Fatalf("Cannot load config: %v", err)
		}
	}
	if noOpt {
		cfg.NoRangeOpt = true
	}

	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(ice.Error); ok {
				fmt.Fprintln(os.Stderr, e)
				os.Exit(2)
			}
			panic(r)
		}
	}()

	l := lower.New(cfg)
	if logFile != "" {
		l.AddLogFiles(logFile)
	}
	// Sync error ignored. See https://github.com/uber-go/zap/issues/328
	defer l.Logger.Sync()

	heading := color.New(color.FgCyan, color.Bold)
	for _, d := range demos() {
		heading.Printf("── %s\n", d.name)
		fmt.Println(d.build(l))
	}
}
