package main

import (
	"fmt"
	"net/netip"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"github.com/seancfoley/ipaddress-go/ipaddr"
	"github.com/spf13/cobra"

	"github.com/Fivegen-LLC/arin-enricher/infrastructure"
	"github.com/Fivegen-LLC/arin-enricher/internal/constants"
	"github.com/Fivegen-LLC/arin-enricher/internal/domains/report"
	"github.com/Fivegen-LLC/arin-enricher/internal/entities"
	"github.com/Fivegen-LLC/arin-enricher/internal/environment"
	"github.com/Fivegen-LLC/arin-enricher/internal/logger"
)

type lookupFlags struct {
	blacklist  []string
	lookupIPv6 bool
	output     string
	logLevel   string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "arinctl",
		Short:        "Query ARIN WHOIS for addresses and CIDR blocks",
		SilenceUsage: true,
	}
	rootCmd.AddCommand(newLookupCmd())

	return rootCmd
}

func newLookupCmd() *cobra.Command {
	var flags lookupFlags
	cmd := &cobra.Command{
		Use:   "lookup <ip|cidr>...",
		Short: "Look up registry data for the given values",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookup(cmd, args, flags)
		},
	}
	cmd.Flags().StringSliceVar(&flags.blacklist, "blacklist", nil, "values to skip")
	cmd.Flags().BoolVar(&flags.lookupIPv6, "ipv6", false, "look up IPv6 addresses")
	cmd.Flags().StringVarP(&flags.output, "output", "o", constants.CLIOutputFormatTable, "output format: table or json")
	cmd.Flags().StringVar(&flags.logLevel, "log-level", "warn", "log level")

	return cmd
}

func runLookup(cmd *cobra.Command, args []string, flags lookupFlags) (err error) {
	if !lo.Contains([]string{constants.CLIOutputFormatTable, constants.CLIOutputFormatJSON}, flags.output) {
		return fmt.Errorf("runLookup: unknown output format %q", flags.output)
	}

	logger.SetOutput(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()})
	if err = logger.SetLogLevel(flags.logLevel); err != nil {
		return fmt.Errorf("runLookup: %w", err)
	}

	env, err := environment.New()
	if err != nil {
		return fmt.Errorf("runLookup: %w", err)
	}

	kernel, err := infrastructure.Inject(env)
	if err != nil {
		return fmt.Errorf("runLookup: %w", err)
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	items := lo.Map(args, func(value string, _ int) entities.Entity {
		return classify(value)
	})
	results, err := kernel.InjectIntegrationService().DoLookup(ctx, items, entities.Options{
		Blacklist:  flags.blacklist,
		LookupIPv6: flags.lookupIPv6,
	})
	if err != nil {
		return fmt.Errorf("runLookup: %w", err)
	}

	log.Debug().
		Int("results", len(results)).
		Msg("runLookup: lookup finished")

	output := report.FormatResultsToTable(results)
	if flags.output == constants.CLIOutputFormatJSON {
		if output, err = report.FormatResultsToJSON(results); err != nil {
			return fmt.Errorf("runLookup: %w", err)
		}
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), output)
	return err
}

// classify builds an entity the way the host platform tags it.
func classify(value string) entities.Entity {
	value = strings.TrimSpace(value)
	entity := entities.Entity{
		Value: value,
		Types: []string{},
	}

	addrStr := ipaddr.NewIPAddressString(value)
	if addrStr.IsPrefixed() && addrStr.IsIPv4() {
		entity.Types = append(entity.Types, constants.EntityTypeIPv4CIDR)
		return entity
	}

	addr, err := netip.ParseAddr(value)
	if err != nil {
		return entity
	}

	entity.IsIPv4 = addr.Is4()
	entity.IsIPv6 = addr.Is6()
	entity.IsPrivateIP = addr.IsPrivate() || addr.IsLoopback() || addr.IsLinkLocalUnicast() || addr.IsUnspecified()

	return entity
}
