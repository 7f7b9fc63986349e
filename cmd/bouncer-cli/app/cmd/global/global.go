package global

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/neutree-ai/bouncer-probe/pkg/bouncer"
)

var (
	UserAgent string
	Locale    string
	Timeout   time.Duration
)

// AddFlags registers --user-agent, --locale and --timeout as persistent flags on the root command.
func AddFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&UserAgent, "user-agent", "", "User-Agent header sent to the bouncer (env: BOUNCER_USER_AGENT)")
	cmd.PersistentFlags().StringVar(&Locale, "locale", "", "Accept-Language header sent to the bouncer (env: BOUNCER_LOCALE)")
	cmd.PersistentFlags().DurationVar(&Timeout, "timeout", bouncer.DefaultTimeout, "Timeout of each request stage")
}

// ResolveEnv fills in flag values from environment variables when not set via flags.
func ResolveEnv() {
	if UserAgent == "" {
		UserAgent = os.Getenv("BOUNCER_USER_AGENT")
	}

	if Locale == "" {
		Locale = os.Getenv("BOUNCER_LOCALE")
	}
}

// NewProber creates a prober from the resolved global flags.
func NewProber() *bouncer.Prober {
	ResolveEnv()

	return bouncer.NewProber(
		bouncer.WithUserAgent(UserAgent),
		bouncer.WithLocale(Locale),
		bouncer.WithTimeout(Timeout),
	)
}
