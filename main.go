package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// version is set at build time via -ldflags.
var version = "dev"

type globalFlags struct {
	configFile string
	logLevel   string
	logFormat  string
	markdown   bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}

	root := &cobra.Command{
		Use:   "cryptogram",
		Short: "Recover plaintext from Caesar and substitution ciphers",
		Long: "cryptogram guesses the key of a classical cipher by scoring candidate\n" +
			"plaintexts for common English words.\n\n" +
			"Ciphertext is read from FILE, or stdin when no file is given.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level, err := parseLevel(g.logLevel)
			if err != nil {
				return err
			}
			initLogging(level, g.logFormat, cmd.ErrOrStderr())
			return nil
		},
	}

	f := root.PersistentFlags()
	f.StringVarP(&g.configFile, "config", "c", "", "YAML config file")
	f.StringVar(&g.logLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	f.StringVar(&g.logFormat, "log-format", "text", "Log format: text or json")
	f.BoolVar(&g.markdown, "markdown", false, "Render tables as Markdown")

	root.AddCommand(newCaesarCmd(g))
	root.AddCommand(newSubstituteCmd(g))
	root.AddCommand(newDecodeCmd())
	return root
}

func (g *globalFlags) mode() outputMode {
	if g.markdown {
		return modeMarkdown
	}
	return modeASCII
}

// openInput returns the named file, or the command's stdin when no file
// was given.
func openInput(cmd *cobra.Command, args []string) (io.ReadCloser, error) {
	if len(args) > 0 {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, fmt.Errorf("open ciphertext: %w", err)
		}
		return f, nil
	}
	return io.NopCloser(cmd.InOrStdin()), nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for s.Scan() {
		lines = append(lines, s.Text())
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("read ciphertext: %w", err)
	}
	return lines, nil
}

func newCaesarCmd(g *globalFlags) *cobra.Command {
	var top, parallel, encode int

	cmd := &cobra.Command{
		Use:   "caesar [FILE]",
		Short: "Try all 26 shifts on each input line",
		Long: "Read cryptograms, one per line, and print every Caesar shift of each\n" +
			"with its score followed by the best candidate. Blank lines and lines\n" +
			"whose first non-blank character is '#' are skipped.\n\n" +
			"With --encode N, shift each line forward by N instead and print it.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(g.configFile)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("top") {
				cfg.Top = top
			}
			if cmd.Flags().Changed("parallel") {
				cfg.Parallel = max(parallel, 1)
			}

			in, err := openInput(cmd, args)
			if err != nil {
				return err
			}
			defer in.Close()

			lines, err := readLines(in)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("encode") {
				return runCaesarEncode(cmd.OutOrStdout(), lines, encode)
			}
			return runCaesar(cmd.Context(), cmd.OutOrStdout(), lines, cfg, g.mode())
		},
	}

	f := cmd.Flags()
	f.IntVarP(&top, "top", "n", nrLetters, "Show only the N best shifts, ranked by score")
	f.IntVarP(&parallel, "parallel", "p", 0, "Number of lines to solve at once")
	f.IntVarP(&encode, "encode", "e", 0, "Encrypt each line with this shift instead of solving")
	return cmd
}

// runCaesarEncode shifts every line forward; blank lines pass through.
func runCaesarEncode(out io.Writer, lines []string, shift int) error {
	if strings.TrimSpace(joinLines(lines)) == "" {
		return fmt.Errorf("caesar: %w", ErrEmptyInput)
	}
	for _, l := range lines {
		fmt.Fprintln(out, encodeShift(l, shift))
	}
	return nil
}

func runCaesar(ctx context.Context, out io.Writer, lines []string, cfg config, m outputMode) error {
	logger := newLogger("caesar")

	var cts []string
	for _, l := range lines {
		if strings.TrimSpace(l) == "" || isComment(l) {
			continue
		}
		cts = append(cts, l)
	}
	if len(cts) == 0 {
		return fmt.Errorf("caesar: %w", ErrEmptyInput)
	}

	wl := cfg.wordList()
	results := make([]caesarResult, len(cts))

	start := time.Now()
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(cfg.Parallel)
	for i, ct := range cts {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := solveCaesar(ct, wl)
			if err != nil {
				return fmt.Errorf("line %d: %w", i+1, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}
	logger.Info("solved", "lines", len(cts), "elapsed", time.Since(start))

	for i, res := range results {
		cands := res.candidates
		if cfg.Top > 0 && cfg.Top < nrLetters {
			cands = rankShifts(cands, cfg.Top)
		}

		fmt.Fprintf(out, "%s\n", cts[i])
		fmt.Fprintln(out, shiftTable(cands, m))
		fmt.Fprintf(out, "Best candidate: shift %d, score %d\n%s\n\n", res.best.shift, res.best.score, res.best.plaintext)
		logger.Debug("best shift", "line", i+1, "shift", res.best.shift, "score", res.best.score)
	}
	return nil
}

func newSubstituteCmd(g *globalFlags) *cobra.Command {
	var (
		iterations int
		seed       uint64
	)

	cmd := &cobra.Command{
		Use:     "substitute [FILE]",
		Aliases: []string{"sub"},
		Short:   "Break a monoalphabetic substitution cipher",
		Long: "Read the whole input as one ciphertext, normalize it to lowercase letters\n" +
			"and spaces, and hill-climb from a frequency-analysis key. The result is a\n" +
			"best guess and may be imperfect.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(g.configFile)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("iterations") {
				cfg.Iterations = iterations
			}
			if cmd.Flags().Changed("seed") {
				cfg.Seed = &seed
			}
			if cfg.Iterations < 0 {
				return fmt.Errorf("substitute: %w: %d", ErrInvalidIterations, cfg.Iterations)
			}

			in, err := openInput(cmd, args)
			if err != nil {
				return err
			}
			defer in.Close()

			lines, err := readLines(in)
			if err != nil {
				return err
			}
			return runSubstitute(cmd.OutOrStdout(), joinLines(lines), cfg, g.mode())
		},
	}

	f := cmd.Flags()
	f.IntVarP(&iterations, "iterations", "i", defaultIterations, "Number of swap trials")
	f.Uint64VarP(&seed, "seed", "s", 0, "Random seed (default: derived from the clock)")
	return cmd
}

func runSubstitute(out io.Writer, text string, cfg config, m outputMode) error {
	logger := newLogger("substitution")

	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("substitute: %w", ErrEmptyInput)
	}

	seed := uint64(time.Now().UnixNano())
	if cfg.Seed != nil {
		seed = *cfg.Seed
	}

	opts := substitutionOptions{
		Iterations: cfg.Iterations,
		Rank:       cfg.EnglishRank,
		Words:      cfg.wordList(),
		Rand:       newRand(seed),
	}

	start := time.Now()
	res, err := solveSubstitution(normalize(text), opts)
	if err != nil {
		return err
	}
	logger.Info("search done",
		"seed", seed,
		"iterations", res.iterations,
		"accepted", res.accepted,
		"seed_score", res.seedScore,
		"score", res.score,
		"elapsed", time.Since(start))

	fmt.Fprintln(out, "===== Decrypted guess (may be imperfect) =====")
	fmt.Fprintln(out, res.plaintext)
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Score: %d (seed key %d, %d improving swaps)\n\n", res.score, res.seedScore, res.accepted)
	fmt.Fprintln(out, "===== Mapping (cipher letter -> plain letter) =====")
	fmt.Fprintln(out, mappingTable(res.key, m))
	return nil
}

func newDecodeCmd() *cobra.Command {
	var (
		keyStr string
		encode bool
	)

	cmd := &cobra.Command{
		Use:   "decode [FILE]",
		Short: "Apply a known substitution key",
		Long: "Decode (or with --encode, encrypt) the input with a full substitution key.\n" +
			"The key is 26 letters giving the plaintext for cipher letters a..z, or\n" +
			"CIPHER=PLAIN pairs such as \"ABC=THE D=Q\" covering every letter.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := parseKeyMap(keyStr)
			if err != nil {
				return err
			}
			if encode {
				k = k.inverse()
			}

			in, err := openInput(cmd, args)
			if err != nil {
				return err
			}
			defer in.Close()

			lines, err := readLines(in)
			if err != nil {
				return err
			}
			text := joinLines(lines)
			if strings.TrimSpace(text) == "" {
				return fmt.Errorf("decode: %w", ErrEmptyInput)
			}

			newLogger("decode").Debug("applying key", "key", k.letters(), "encode", encode)
			fmt.Fprintln(cmd.OutOrStdout(), k.decode(strings.ToLower(text)))
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&keyStr, "key", "k", "", "Substitution key (required)")
	f.BoolVarP(&encode, "encode", "e", false, "Encrypt instead of decrypt")
	_ = cmd.MarkFlagRequired("key")
	return cmd
}
