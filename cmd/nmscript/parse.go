package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"nmscript/internal/ast"
	"nmscript/internal/diag"
	"nmscript/internal/diagfmt"
	"nmscript/internal/lexer"
	"nmscript/internal/parser"
	"nmscript/internal/source"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file.nms>",
	Short: "Parse an NMScript file and dump the syntax tree",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func runParse(cmd *cobra.Command, args []string) error {
	maxDiagnostics, _ := cmd.Root().PersistentFlags().GetInt("max-diagnostics")

	fileSet := source.NewFileSet()
	file, err := fileSet.Load(args[0])
	if err != nil {
		return err
	}

	errs := diag.NewErrorList(maxDiagnostics)
	toks := lexer.Tokenize(file, errs)
	prog := parser.New(toks, errs).Parse()

	if !errs.Empty() {
		popts := diagfmt.DefaultPrettyOpts()
		popts.Color = useColor(cmd)
		errs.Sort()
		diagfmt.Pretty(os.Stderr, errs, fileSet, popts)
	}

	dumpProgram(cmd.OutOrStdout(), prog)

	if errs.HasErrors() {
		os.Exit(1)
	}
	return nil
}

func dumpProgram(w io.Writer, prog *ast.Program) {
	for _, ch := range prog.Characters {
		fmt.Fprintf(w, "character %s %q %s\n", ch.ID, ch.DisplayName, ch.Color)
	}
	for _, sc := range prog.Scenes {
		if sc.Entry {
			fmt.Fprintf(w, "entry scene %s\n", sc.Name)
		} else {
			fmt.Fprintf(w, "scene %s\n", sc.Name)
		}
		dumpStmts(w, sc.Body, 1)
	}
}

func dumpStmts(w io.Writer, stmts []ast.Stmt, depth int) {
	for _, s := range stmts {
		dumpStmt(w, s, depth)
	}
}

func dumpStmt(w io.Writer, s ast.Stmt, depth int) {
	indent := strings.Repeat("  ", depth)
	switch s := s.(type) {
	case ast.ShowStmt:
		if s.Target == ast.ShowBackground {
			fmt.Fprintf(w, "%sshow background %q\n", indent, s.ID)
		} else if s.Position != "" {
			fmt.Fprintf(w, "%sshow %s at %s\n", indent, s.ID, s.Position)
		} else {
			fmt.Fprintf(w, "%sshow %s\n", indent, s.ID)
		}
	case ast.HideStmt:
		if s.Target == ast.ShowBackground {
			fmt.Fprintf(w, "%shide background\n", indent)
		} else {
			fmt.Fprintf(w, "%shide %s\n", indent, s.ID)
		}
	case ast.SayStmt:
		if s.Speaker != "" {
			fmt.Fprintf(w, "%ssay %s %q\n", indent, s.Speaker, s.Text)
		} else {
			fmt.Fprintf(w, "%ssay %q\n", indent, s.Text)
		}
	case ast.ChoiceStmt:
		fmt.Fprintf(w, "%schoice\n", indent)
		for _, opt := range s.Options {
			fmt.Fprintf(w, "%s  option %q\n", indent, opt.Text)
			dumpStmts(w, opt.Body, depth+2)
		}
	case ast.IfStmt:
		fmt.Fprintf(w, "%sif %s\n", indent, dumpExpr(s.Cond))
		dumpStmts(w, s.Then, depth+1)
		if len(s.Else) > 0 {
			fmt.Fprintf(w, "%selse\n", indent)
			dumpStmts(w, s.Else, depth+1)
		}
	case ast.GotoStmt:
		fmt.Fprintf(w, "%sgoto %s\n", indent, s.Target)
	case ast.WaitStmt:
		fmt.Fprintf(w, "%swait %s\n", indent, dumpExpr(s.Duration))
	case ast.PlayStmt:
		fmt.Fprintf(w, "%splay %s %s\n", indent, s.Channel, dumpExpr(s.Asset))
	case ast.StopStmt:
		fmt.Fprintf(w, "%sstop %s\n", indent, s.Channel)
	case ast.SetStmt:
		fmt.Fprintf(w, "%sset %s = %s\n", indent, s.Name, dumpExpr(s.Value))
	case ast.TransitionStmt:
		if s.Duration != nil {
			fmt.Fprintf(w, "%stransition %s %s\n", indent, s.Type, dumpExpr(s.Duration))
		} else {
			fmt.Fprintf(w, "%stransition %s\n", indent, s.Type)
		}
	case ast.BlockStmt:
		fmt.Fprintf(w, "%sblock\n", indent)
		dumpStmts(w, s.Stmts, depth+1)
	case ast.ExprStmt:
		fmt.Fprintf(w, "%sexpr %s\n", indent, dumpExpr(s.X))
	}
}

func dumpExpr(e ast.Expr) string {
	switch e := e.(type) {
	case nil:
		return "<nil>"
	case ast.LiteralExpr:
		switch e.Kind {
		case ast.LitString:
			return fmt.Sprintf("%q", e.Str)
		case ast.LitNumber:
			return fmt.Sprintf("%g", e.Num)
		default:
			return fmt.Sprintf("%t", e.Bool)
		}
	case ast.IdentExpr:
		return e.Name
	case ast.BinaryExpr:
		return fmt.Sprintf("(%s %s %s)", dumpExpr(e.Left), e.Op, dumpExpr(e.Right))
	case ast.UnaryExpr:
		return fmt.Sprintf("(%s%s)", e.Op, dumpExpr(e.X))
	case ast.CallExpr:
		args := make([]string, len(e.Args))
		for i, a := range e.Args {
			args[i] = dumpExpr(a)
		}
		return fmt.Sprintf("%s(%s)", e.Name, strings.Join(args, ", "))
	case ast.PropertyExpr:
		return fmt.Sprintf("%s.%s", dumpExpr(e.Base), e.Property)
	default:
		return "<unknown>"
	}
}
