package main

import (
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap/zapcore"

	clientconfig "github.com/quantumauth-io/quantum-auth-keys/cmd/keyconv/config"
	"github.com/quantumauth-io/quantum-auth-keys/internal/evm"
	"github.com/quantumauth-io/quantum-auth-keys/internal/keyresponse"
	"github.com/quantumauth-io/quantum-auth-keys/internal/logging"
	"github.com/quantumauth-io/quantum-auth-keys/internal/seed"
	"github.com/quantumauth-io/quantum-auth-keys/internal/solana"
)

var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		logging.Stderr().Fatalw("keyconv failed", "error", err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:      "keyconv",
		Usage:     "convert a key service response into a chain account address",
		Version:   Version,
		ArgsUsage: "<response.json|->",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Usage: "path to config file"},
			&cli.StringFlag{Name: "chain", Usage: "target chain: evm or solana"},
			&cli.BoolFlag{Name: "secure", Usage: "hash legacy TLS keys before use (--secure=false for legacy addresses)"},
			&cli.BoolFlag{Name: "verbose", Usage: "log debug output to stderr"},
		},
		Action: run,
	}
}

func run(c *cli.Context) error {
	level := zapcore.InfoLevel
	if c.Bool("verbose") {
		level = zapcore.DebugLevel
	}
	log := logging.New(c.App.ErrWriter, level)
	log.Debugw("keyconv",
		"version", Version,
		"commit", Commit,
		"build_date", BuildDate,
	)

	cfg, err := clientconfig.Load(c.String("config"))
	if err != nil {
		return errors.Wrap(err, "failed to parse config")
	}
	if c.IsSet("chain") {
		cfg.Chain = c.String("chain")
		if err := cfg.Normalize(); err != nil {
			return err
		}
	}
	if c.IsSet("secure") {
		cfg.Secure = c.Bool("secure")
	}

	data, err := readInput(c.App.Reader, c.Args().First())
	if err != nil {
		return err
	}

	addr, err := convert(cfg, data, seed.WithWarner(seed.NewLogWarner(c.App.ErrWriter)))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.App.Writer, addr)
	return err
}

func readInput(stdin io.Reader, arg string) ([]byte, error) {
	if arg == "" || arg == "-" {
		if stdin == nil {
			stdin = os.Stdin
		}
		b, err := io.ReadAll(stdin)
		return b, errors.Wrap(err, "read stdin")
	}
	b, err := os.ReadFile(arg)
	return b, errors.Wrapf(err, "read %s", arg)
}

// convert decodes a key response and returns the address of the account it
// maps to on the configured chain.
func convert(cfg *clientconfig.Config, data []byte, opts ...seed.Option) (string, error) {
	resp, err := keyresponse.Decode(data)
	if err != nil {
		return "", err
	}

	switch cfg.Chain {
	case clientconfig.ChainSolana:
		c := solana.NewConverter(opts...)
		var kp *solana.Keypair
		if cfg.Secure {
			kp, err = c.ToKeypairSecure(resp)
		} else {
			kp, err = c.ToKeypair(resp) //nolint:staticcheck // legacy addresses on request
		}
		if err != nil {
			return "", err
		}
		return kp.Address(), nil
	case clientconfig.ChainEVM:
		c := evm.NewConverter(opts...)
		var acc *evm.Account
		if cfg.Secure {
			acc, err = c.ToAccountSecure(resp)
		} else {
			acc, err = c.ToAccount(resp) //nolint:staticcheck // legacy addresses on request
		}
		if err != nil {
			return "", err
		}
		return acc.Address().Hex(), nil
	default:
		return "", errors.Newf("invalid chain %q", cfg.Chain)
	}
}
