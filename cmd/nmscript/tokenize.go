package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"nmscript/internal/diag"
	"nmscript/internal/diagfmt"
	"nmscript/internal/lexer"
	"nmscript/internal/source"
	"nmscript/internal/token"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize <file.nms>",
	Short: "Tokenize an NMScript file",
	Long:  `Tokenize breaks a script down into its constituent tokens, one per line`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func runTokenize(cmd *cobra.Command, args []string) error {
	maxDiagnostics, _ := cmd.Root().PersistentFlags().GetInt("max-diagnostics")

	fileSet := source.NewFileSet()
	file, err := fileSet.Load(args[0])
	if err != nil {
		return err
	}

	errs := diag.NewErrorList(maxDiagnostics)
	toks := lexer.Tokenize(file, errs)

	if !errs.Empty() {
		popts := diagfmt.DefaultPrettyOpts()
		popts.Color = useColor(cmd)
		errs.Sort()
		diagfmt.Pretty(os.Stderr, errs, fileSet, popts)
	}

	for _, tok := range toks {
		if tok.IsLiteral() || tok.Kind == token.Ident {
			fmt.Fprintf(cmd.OutOrStdout(), "%d:%d\t%s\t%q\n", tok.Loc.Line, tok.Loc.Col, tok.Kind, tok.Text)
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "%d:%d\t%s\n", tok.Loc.Line, tok.Loc.Col, tok.Kind)
		}
	}

	if errs.HasErrors() {
		os.Exit(1)
	}
	return nil
}
