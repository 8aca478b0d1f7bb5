package cli

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rcliao/aoc2018/internal/input"
	"github.com/rcliao/aoc2018/internal/puzzle"
	"github.com/rcliao/aoc2018/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "solve [day...]",
		Short: "Solve puzzles",
		Long:  "Solve the given days (all registered days if none). Reads dayNN.txt from the input directory unless --input is set.",
		Run:   runSolve,
	}

	cmd.Flags().IntP("part", "p", 0, "Only solve this part (1 or 2)")
	cmd.Flags().String("input", "", "Input file for a single day (- for stdin)")
	cmd.Flags().Bool("record", false, "Append answers to the history database")
	cmd.Flags().Bool("check", false, "Fail if an answer differs from the last recorded one for the same input")

	RootCmd.AddCommand(cmd)
}

func runSolve(cmd *cobra.Command, args []string) {
	part, _ := cmd.Flags().GetInt("part")
	inputPath, _ := cmd.Flags().GetString("input")
	record, _ := cmd.Flags().GetBool("record")
	check, _ := cmd.Flags().GetBool("check")

	reg, err := newRegistry()
	if err != nil {
		exitErr("registry", err)
	}

	days, err := parseDays(reg, args)
	if err != nil {
		exitErr("solve", err)
	}
	if inputPath != "" && len(days) != 1 {
		exitErr("solve", fmt.Errorf("--input needs exactly one day, got %d", len(days)))
	}

	parts := []int{1, 2}
	if part != 0 {
		parts = []int{part}
	}

	r := &runner{
		reg:    reg,
		log:    logger,
		out:    cmd.OutOrStdout(),
		format: cfg.Format,
		record: record,
		check:  check,
	}

	if record || check {
		s, err := openStore()
		if err != nil {
			exitErr("open store", err)
		}
		r.history = s
	}

	err = r.solveDays(cmd.Context(), cfg.InputDir, inputPath, days, parts)
	if r.history != nil {
		r.history.Close()
	}
	if err != nil {
		exitErr("solve", err)
	}
}

// solveDays reads each day's input, from override when set, and solves it.
// It stops at the first failure.
func (r *runner) solveDays(ctx context.Context, dir, override string, days, parts []int) error {
	for _, day := range days {
		path := override
		if path == "" {
			path = input.Path(dir, day)
		}
		text, err := input.Read(path)
		if err != nil {
			return fmt.Errorf("day %d: %w", day, err)
		}
		if err := r.solve(ctx, day, parts, text); err != nil {
			return fmt.Errorf("day %d: %w", day, err)
		}
	}
	return nil
}

func parseDays(reg *puzzle.Registry, args []string) ([]int, error) {
	if len(args) == 0 {
		return reg.Days(), nil
	}
	days := make([]int, 0, len(args))
	for _, a := range args {
		d, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("invalid day %q", a)
		}
		if _, err := reg.Lookup(d); err != nil {
			return nil, err
		}
		days = append(days, d)
	}
	return days, nil
}

// ErrAnswerChanged is returned by --check when a solver disagrees with the
// history for identical input.
var ErrAnswerChanged = errors.New("answer changed")

// result is one printed answer.
type result struct {
	Day       int   `json:"day"`
	Part      int   `json:"part"`
	Answer    int   `json:"answer"`
	ElapsedNS int64 `json:"elapsed_ns"`
}

// runner solves days and writes answers, optionally consulting the history.
type runner struct {
	reg     *puzzle.Registry
	log     *zap.Logger
	history store.Store
	out     io.Writer
	format  string
	record  bool
	check   bool
}

func (r *runner) solve(ctx context.Context, day int, parts []int, text string) error {
	s, err := r.reg.Lookup(day)
	if err != nil {
		return err
	}

	sum := sha256.Sum256([]byte(text))
	hash := hex.EncodeToString(sum[:])

	for _, part := range parts {
		start := time.Now()
		v, err := puzzle.Part(s, part, text)
		elapsed := time.Since(start)
		if err != nil {
			return fmt.Errorf("part %d: %w", part, err)
		}
		r.log.Debug("solved",
			zap.Int("day", day),
			zap.Int("part", part),
			zap.Int("answer", v),
			zap.Duration("elapsed", elapsed))

		if r.check {
			if err := r.verify(ctx, day, part, v, hash); err != nil {
				return err
			}
		}

		if err := r.print(result{Day: day, Part: part, Answer: v, ElapsedNS: elapsed.Nanoseconds()}); err != nil {
			return err
		}

		if r.record {
			a, err := r.history.Record(ctx, store.RecordParams{
				Day:       day,
				Part:      part,
				Value:     v,
				InputHash: hash,
				Elapsed:   elapsed,
			})
			if err != nil {
				return fmt.Errorf("record: %w", err)
			}
			r.log.Info("answer recorded", zap.String("id", a.ID), zap.Int("day", day), zap.Int("part", part))
		}
	}
	return nil
}

func (r *runner) verify(ctx context.Context, day, part, v int, hash string) error {
	prev, err := r.history.Latest(ctx, day, part)
	if errors.Is(err, store.ErrNotFound) {
		r.log.Warn("no recorded answer to check against", zap.Int("day", day), zap.Int("part", part))
		return nil
	}
	if err != nil {
		return fmt.Errorf("check: %w", err)
	}
	if prev.InputHash != hash {
		r.log.Warn("input differs from recorded run, skipping check",
			zap.Int("day", day), zap.Int("part", part), zap.String("recorded_id", prev.ID))
		return nil
	}
	if prev.Value != v {
		return fmt.Errorf("%w: part %d was %d (%s), now %d", ErrAnswerChanged, part, prev.Value, prev.ID, v)
	}
	return nil
}

func (r *runner) print(res result) error {
	var err error
	switch r.format {
	case "json":
		var b []byte
		b, err = json.Marshal(res)
		if err == nil {
			_, err = fmt.Fprintln(r.out, string(b))
		}
	case "value":
		_, err = fmt.Fprintln(r.out, res.Answer)
	default:
		_, err = fmt.Fprintf(r.out, "Day%02d part%d: %d\n", res.Day, res.Part, res.Answer)
	}
	return err
}
