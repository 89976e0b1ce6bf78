package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"svw.info/nsudoku/internal/domain"
	"svw.info/nsudoku/internal/render"
)

var commandSolve = &cobra.Command{
	Use:   "solve [file]",
	Short: "Solve a puzzle read from a file or stdin",
	Long: "Reads a flat row-major sequence of cell values (0 = empty),\n" +
		"whitespace- or comma-separated, solves it and prints the grid.",
	Run: func(cmd *cobra.Command, args []string) {
		if err := solveFile(args); err != nil {
			logrus.Fatal(err)
		}
	},
	Args: cobra.MaximumNArgs(1),
}

var solveSolver string

func init() {
	commandSolve.Flags().StringVar(&solveSolver, "solver", "backtrack", "solver to use: dlx|backtrack")
	mainCommand.AddCommand(commandSolve)
}

func readCells(args []string) ([]int, error) {
	var data []byte
	var err error
	if len(args) == 1 && args[0] != "-" {
		data, err = os.ReadFile(args[0])
	} else {
		data, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		return nil, err
	}
	fields := strings.FieldsFunc(string(data), func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == ','
	})
	cells := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("bad cell value %q: %w", f, err)
		}
		cells = append(cells, v)
	}
	return cells, nil
}

func solveFile(args []string) error {
	cells, err := readCells(args)
	if err != nil {
		return err
	}
	b, err := domain.NewBoard(cells)
	if err != nil {
		return err
	}
	out, st, err := pickSolver(solveSolver).Solve(context.Background(), b)
	if err != nil {
		return err
	}
	fmt.Print(render.Text(out))
	logrus.WithFields(logrus.Fields{"nodes": st.Nodes, "dur": st.Duration}).Debug("solved")
	return nil
}
