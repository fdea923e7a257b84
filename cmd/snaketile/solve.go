package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"svw.info/snaketile/internal/domain"
	"svw.info/snaketile/internal/generator"
	"svw.info/snaketile/internal/solver"
	"svw.info/snaketile/internal/usecase"
	"svw.info/snaketile/internal/validator"
)

var solveCmd = &cobra.Command{
	Use:   "solve <shape-file>",
	Short: "tile one shape file and print the result",
	Args:  cobra.ExactArgs(1),
	RunE:  runSolve,
}

func init() {
	solveCmd.Flags().Int("min-len", 2, "minimum snake length")
	solveCmd.Flags().Int("max-len", 6, "maximum snake length")
	solveCmd.Flags().Int64("seed", 0, "random seed (0 = non-deterministic)")
	solveCmd.Flags().Duration("timeout", 30*time.Second, "wall-clock limit")
	solveCmd.Flags().Bool("profile", false, "write a CPU profile to the working directory")
	_ = viper.BindPFlags(solveCmd.Flags())
}

func runSolve(cmd *cobra.Command, args []string) error {
	if viper.GetBool("profile") {
		defer profile.Start(profile.ProfilePath(".")).Stop()
	}

	text, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	req := domain.TilingRequest{
		// A trailing newline from the file would read as one extra
		// empty row; strip it here, not in the parser.
		Shape:       strings.TrimRight(string(text), "\n"),
		MinLen:      viper.GetInt("min-len"),
		MaxLen:      viper.GetInt("max-len"),
		MaxAttempts: viper.GetInt("max-attempts"),
	}
	if seed := viper.GetInt64("seed"); seed != 0 {
		req.Seed = &seed
	}

	s := solver.NewBacktracking(viper.GetInt("iteration-cap"))
	uc := usecase.NewService(generator.New(s, viper.GetInt("max-attempts")), validator.New(), nil)

	ctx, cancel := context.WithTimeout(context.Background(), viper.GetDuration("timeout"))
	defer cancel()

	t, st, err := uc.Generate(ctx, req)
	if err != nil {
		if errors.Is(err, generator.ErrNoTiling) {
			return fmt.Errorf("no tiling after %d attempts (%d iterations, %v); adjust the length range",
				st.Attempts, st.Iterations, st.Duration.Round(time.Millisecond))
		}
		return err
	}

	fmt.Println(t.String())
	for _, sn := range t.Snakes {
		line := fmt.Sprintf("%c: len=%d dir=%s head=(%d,%d)",
			'A'+(sn.Label-1)%26, len(sn.Positions), sn.Direction, sn.Positions[0].X, sn.Positions[0].Y)
		if sn.LookingAt != nil {
			line += fmt.Sprintf(" looking=(%d,%d)", sn.LookingAt.X, sn.LookingAt.Y)
		}
		fmt.Println(line)
	}
	fmt.Printf("solved on attempt %d, %d iterations, %v\n",
		t.Attempts, st.Iterations, st.Duration.Round(time.Millisecond))
	return nil
}
