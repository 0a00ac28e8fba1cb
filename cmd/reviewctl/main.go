package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"review-verify/client"
	"review-verify/domain"
	"strings"
	"syscall"
	"time"

	"github.com/samber/lo"
	"github.com/urfave/cli/v3"
)

// Exit codes for the command line client.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

var errUsage = errors.New("usage error")

const (
	serverFlag  = "server"
	coloursFlag = "colours"
	timeoutFlag = "timeout"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	code, err := run(ctx, os.Args, os.Stdin, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "reviewctl: %v\n", err)
	}
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) (int, error) {
	err := newApp(stdin, stdout).Run(ctx, args)
	switch {
	case err == nil:
		return exitOK, nil
	case errors.Is(err, errUsage):
		return exitConfig, err
	default:
		return exitRuntime, err
	}
}

// newApp builds a fresh command tree per run; flags keep parse state.
func newApp(stdin io.Reader, stdout io.Writer) *cli.Command {
	return &cli.Command{
		Name:            "reviewctl",
		Usage:           "Score product reviews against a review-verify server",
		UsageText:       "reviewctl [--server URL] <analyze|predict> [review ...]\nReviews are read from stdin, one per line, when none are given.",
		Writer:          stdout,
		HideHelpCommand: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    serverFlag,
				Usage:   "Base URL of the review-verify server",
				Value:   "http://localhost:5000",
				Sources: cli.EnvVars("REVIEW_SERVER_URL"),
			},
			&cli.BoolFlag{
				Name:    coloursFlag,
				Usage:   "Colorize verdicts (optional, default: true)",
				Value:   true,
				Sources: cli.EnvVars("REVIEW_COLOURS"),
			},
			&cli.DurationFlag{
				Name:    timeoutFlag,
				Usage:   "Per request timeout",
				Value:   10 * time.Second,
				Sources: cli.EnvVars("REVIEW_TIMEOUT"),
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "analyze",
				Usage:     "Score each review for fakeness and AI authorship",
				ArgsUsage: "[review ...]",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					reviews, err := reviewsFrom(cmd, stdin)
					if err != nil {
						return err
					}
					c, renderer := clientFor(cmd, stdout)
					results := make([]domain.ScoreResult, 0, len(reviews))
					for _, review := range reviews {
						result, err := c.AnalyzeReview(ctx, review)
						if err != nil {
							return err
						}
						results = append(results, result)
					}
					renderer.Scores(results)
					return nil
				},
			},
			{
				Name:      "predict",
				Usage:     "Label the reviews Fake or Genuine with the trained classifier",
				ArgsUsage: "[review ...]",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					reviews, err := reviewsFrom(cmd, stdin)
					if err != nil {
						return err
					}
					c, renderer := clientFor(cmd, stdout)
					labels, err := c.Predict(ctx, reviews)
					if err != nil {
						return err
					}
					renderer.Labels(reviews, labels)
					return nil
				},
			},
		},
		// Reached only when no subcommand matched.
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Present() {
				return fmt.Errorf("%w: unknown command %q", errUsage, cmd.Args().First())
			}
			return fmt.Errorf("%w: missing command, expected analyze or predict", errUsage)
		},
	}
}

func clientFor(cmd *cli.Command, stdout io.Writer) (*client.Client, *client.Renderer) {
	c := client.New(client.Config{
		ServerURL: cmd.String(serverFlag),
		Timeout:   cmd.Duration(timeoutFlag),
	})
	return c, client.NewRenderer(stdout, domain.DefaultVerdictPolicy(), cmd.Bool(coloursFlag))
}

// reviewsFrom takes the positional arguments, or stdin lines when there are none.
func reviewsFrom(cmd *cli.Command, stdin io.Reader) ([]string, error) {
	reviews := cmd.Args().Slice()
	if len(reviews) == 0 {
		var err error
		if reviews, err = readLines(stdin); err != nil {
			return nil, err
		}
	}
	if len(reviews) == 0 {
		return nil, fmt.Errorf("%w: no reviews given", errUsage)
	}
	return reviews, nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	return lo.Filter(lines, func(line string, _ int) bool {
		return strings.TrimSpace(line) != ""
	}), nil
}
