// Package driver feeds inputs to the decode and encode oracles, spreads
// the work over a pool of goroutines, and collects every discrepancy.
package driver

import (
	"context"
	"encoding/hex"
	"fmt"
	"runtime"
	"sync"

	"github.com/dcreager/cobs-go/oracle"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Comparisons run on every input, in this order.
const (
	ComparisonDecode        = "decode"
	ComparisonDecodeInPlace = "decode_inplace"
	ComparisonEncode        = "encode"
)

// fuzzTargets maps each comparison to the fuzz test that replays its crash
// files.
var fuzzTargets = map[string]string{
	ComparisonDecode:        "FuzzDecodeCompare",
	ComparisonDecodeInPlace: "FuzzDecodeCompare",
	ComparisonEncode:        "FuzzEncodeCompare",
}

var comparisons = []string{ComparisonDecode, ComparisonDecodeInPlace, ComparisonEncode}

// Discrepancy is a Mismatch found during a run.
type Discrepancy struct {
	Comparison string
	Result     oracle.Result
	// Path is where the input was saved, if the config has a CrashDir.
	Path string
}

// Summary counts the checks done during a run.  Every input is counted
// once per comparison.
type Summary struct {
	Checked       int
	Matches       int
	Mismatches    int
	Invalid       int
	Discrepancies []Discrepancy
}

func (s *Summary) add(result oracle.Result) {
	s.Checked++
	switch result.Verdict {
	case oracle.Match:
		s.Matches++
	case oracle.Mismatch:
		s.Mismatches++
	case oracle.InvalidInput:
		s.Invalid++
	}
}

func (s *Summary) merge(other Summary) {
	s.Checked += other.Checked
	s.Matches += other.Matches
	s.Mismatches += other.Mismatches
	s.Invalid += other.Invalid
	s.Discrepancies = append(s.Discrepancies, other.Discrepancies...)
}

// Driver runs one fuzzing session.
type Driver struct {
	config    Config
	logger    zerolog.Logger
	checkers  map[string]oracle.Checker
	generator generator
}

// New creates a Driver that checks the block and in-place decoders against
// the bytewise one, and, if config.CompareEncoders is set, the two encoders
// against each other.
func New(config Config, logger zerolog.Logger) (*Driver, error) {
	checkers := map[string]oracle.Checker{
		ComparisonDecode:        oracle.New(config.Convention, oracle.Block(), oracle.Bytewise()),
		ComparisonDecodeInPlace: oracle.New(config.Convention, oracle.InPlace(), oracle.Bytewise()),
	}
	if config.CompareEncoders {
		checkers[ComparisonEncode] = oracle.NewEncodeOracle(oracle.BlockEncoder(), oracle.BytewiseEncoder())
	}
	return NewWithCheckers(config, logger, checkers)
}

// NewWithCheckers creates a Driver around the given oracles, keyed by
// comparison name.  Comparisons missing from checkers are not run.
func NewWithCheckers(config Config, logger zerolog.Logger, checkers map[string]oracle.Checker) (*Driver, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	for comparison := range checkers {
		if _, ok := fuzzTargets[comparison]; !ok {
			return nil, fmt.Errorf("unknown comparison %q", comparison)
		}
	}
	registerMetrics()

	return &Driver{
		config:   config,
		logger:   logger,
		checkers: checkers,
		generator: generator{
			seed:       config.Seed,
			maxLength:  config.MaxLength,
			convention: config.Convention,
		},
	}, nil
}

// Run checks the corpus and then every generated trial.  On cancellation
// it returns what was found so far, along with the context's error.
func (d *Driver) Run(ctx context.Context) (Summary, error) {
	var corpus [][]byte
	if d.config.CorpusDir != "" {
		var err error
		if corpus, err = readCorpus(d.config.CorpusDir); err != nil {
			return Summary{}, err
		}
	}

	workers := d.config.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	total := len(corpus) + d.config.Trials
	d.logger.Info().
		Stringer("convention", d.config.Convention).
		Int("corpus", len(corpus)).
		Int("trials", d.config.Trials).
		Int("workers", workers).
		Int64("seed", d.config.Seed).
		Msg("Starting oracle run")

	var (
		mu      sync.Mutex
		summary Summary
	)
	group, groupCtx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		group.Go(func() error {
			var local Summary
			defer func() {
				mu.Lock()
				summary.merge(local)
				mu.Unlock()
			}()

			for i := w; i < total; i += workers {
				if err := groupCtx.Err(); err != nil {
					return err
				}
				var input []byte
				if i < len(corpus) {
					input = corpus[i]
				} else {
					input = d.generator.input(i - len(corpus))
				}
				if err := d.check(input, &local); err != nil {
					return err
				}
			}
			return nil
		})
	}
	err := group.Wait()

	event := d.logger.Info()
	if summary.Mismatches > 0 {
		event = d.logger.Warn()
	}
	event.
		Int("checked", summary.Checked).
		Int("matches", summary.Matches).
		Int("mismatches", summary.Mismatches).
		Int("invalid", summary.Invalid).
		Msg("Finished oracle run")
	return summary, err
}

func (d *Driver) check(input []byte, summary *Summary) error {
	for _, comparison := range comparisons {
		checker, ok := d.checkers[comparison]
		if !ok {
			continue
		}
		result := checker.Check(input)
		summary.add(result)
		driverChecksTotal.WithLabelValues(comparison, result.Verdict.String()).Inc()
		driverInputSizeBytes.WithLabelValues(comparison).Observe(float64(len(input)))

		switch result.Verdict {
		case oracle.InvalidInput:
			d.logger.Debug().
				Str("comparison", comparison).
				Str("reason", result.Reason).
				Msg("Skipped invalid input")
		case oracle.Mismatch:
			discrepancy := Discrepancy{Comparison: comparison, Result: result}
			if d.config.CrashDir != "" {
				path, err := writeCorpusFile(d.config.CrashDir, fuzzTargets[comparison], result.Input)
				if err != nil {
					return err
				}
				discrepancy.Path = path
			}
			d.logger.Error().
				Str("comparison", comparison).
				Str("reason", result.Reason).
				Str("input", hex.EncodeToString(result.Input)).
				Str("path", discrepancy.Path).
				Msg("Implementations disagree")
			summary.Discrepancies = append(summary.Discrepancies, discrepancy)
		}
	}
	return nil
}
