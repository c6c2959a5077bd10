package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/vnote/internal/config"
	"github.com/javiermolinar/vnote/internal/dateutil"
	"github.com/javiermolinar/vnote/internal/tui/theme"
)

func (a *App) configCmd() *cobra.Command {
	var edit bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "View or edit configuration",
		Long: `Print the effective configuration (file, defaults and VNOTE_* overrides).

With --edit, prompt for each value and save the result. If no config file
exists, one is created with default values first.

Example:
  vnote config
  vnote config --edit`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			if !edit {
				printConfig(out, a.config)
				return nil
			}
			return runConfigInteractive(cmd.InOrStdin(), out, a.configPath)
		},
	}

	cmd.Flags().BoolVar(&edit, "edit", false, "Edit the configuration interactively")

	return cmd
}

func runConfigInteractive(in io.Reader, out io.Writer, configPath string) error {
	_, _ = fmt.Fprintf(out, "Config file: %s\n\n", configPath)

	// Load existing config or create defaults
	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	_, fileErr := os.Stat(configPath)
	if os.IsNotExist(fileErr) {
		_, _ = fmt.Fprintln(out, "No config file found. Creating with default values...")
		if err := cfg.SaveTo(configPath); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		_, _ = fmt.Fprintf(out, "Created %s\n\n", configPath)
	}

	printConfig(out, cfg)
	_, _ = fmt.Fprintln(out)

	normalizeDisplay(cfg)
	reader := bufio.NewReader(in)

	if cfg.Display.Locale, err = promptChoice(reader, out, "Locale", cfg.Display.Locale, dateutil.SupportedLocales()); err != nil {
		return err
	}
	styles := []string{dateutil.StyleCompact.String(), dateutil.StyleDetailed.String()}
	if cfg.Display.RelativeStyle, err = promptChoice(reader, out, "Relative time style", cfg.Display.RelativeStyle, styles); err != nil {
		return err
	}
	if cfg.Display.MinVoiceSeconds, err = promptInt(reader, out, "Minimum clip seconds", cfg.Display.MinVoiceSeconds); err != nil {
		return err
	}
	if cfg.Storage.DBPath, err = promptValue(reader, out, "Database path", cfg.Storage.DBPath); err != nil {
		return err
	}
	if cfg.UI.Theme, err = promptChoice(reader, out, "UI theme", cfg.UI.Theme, theme.Available()); err != nil {
		return err
	}

	// Validate before saving
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if err := cfg.SaveTo(configPath); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	_, _ = fmt.Fprintln(out, "\nConfiguration saved!")
	return nil
}

func printConfig(out io.Writer, cfg *config.Config) {
	_, _ = fmt.Fprintln(out, "Current configuration:")
	_, _ = fmt.Fprintln(out, "──────────────────────")
	_, _ = fmt.Fprintln(out, "[display]")
	_, _ = fmt.Fprintf(out, "  locale            = %s\n", cfg.Display.Locale)
	_, _ = fmt.Fprintf(out, "  relative_style    = %s\n", cfg.Display.RelativeStyle)
	_, _ = fmt.Fprintf(out, "  min_voice_seconds = %d\n", cfg.Display.MinVoiceSeconds)
	_, _ = fmt.Fprintln(out, "\n[storage]")
	_, _ = fmt.Fprintf(out, "  db_path           = %s\n", cfg.Storage.DBPath)
	_, _ = fmt.Fprintln(out, "\n[ui]")
	_, _ = fmt.Fprintf(out, "  theme             = %s\n", cfg.UI.Theme)
}

// normalizeDisplay rewrites accepted spellings such as "pt_BR" or "Detailed"
// to the option names offered by the prompts.
func normalizeDisplay(cfg *config.Config) {
	if tag, err := dateutil.ParseLocale(cfg.Display.Locale); err == nil {
		cfg.Display.Locale = tag.String()
	}
	if style, err := dateutil.ParseStyle(cfg.Display.RelativeStyle); err == nil {
		cfg.Display.RelativeStyle = style.String()
	}
	cfg.UI.Theme = strings.ToLower(cfg.UI.Theme)
}

// promptValue reads one answer. A final line without a newline is accepted;
// reaching end of input with nothing to read aborts the edit.
func promptValue(reader *bufio.Reader, out io.Writer, label, current string) (string, error) {
	if current == "" {
		_, _ = fmt.Fprintf(out, "  %s: ", label)
	} else {
		_, _ = fmt.Fprintf(out, "  %s [%s]: ", label, current)
	}
	input, err := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if err != nil && !(errors.Is(err, io.EOF) && input != "") {
		if errors.Is(err, io.EOF) {
			return current, errors.New("config edit aborted: input closed, nothing saved")
		}
		return current, fmt.Errorf("reading input: %w", err)
	}
	if input == "" {
		return current, nil
	}
	return input, nil
}

func promptInt(reader *bufio.Reader, out io.Writer, label string, current int64) (int64, error) {
	for {
		value, err := promptValue(reader, out, label, strconv.FormatInt(current, 10))
		if err != nil {
			return current, err
		}
		n, err := strconv.ParseInt(value, 10, 64)
		if err == nil && n >= 0 && n < dateutil.MaxClipSeconds {
			return n, nil
		}
		_, _ = fmt.Fprintf(out, "  Invalid value %q. Use 0-%d.\n", value, dateutil.MaxClipSeconds-1)
	}
}

func promptChoice(reader *bufio.Reader, out io.Writer, label, current string, options []string) (string, error) {
	joined := strings.Join(options, ", ")
	full := fmt.Sprintf("%s (%s)", label, joined)
	for {
		value, err := promptValue(reader, out, full, current)
		if err != nil {
			return current, err
		}
		value = strings.ToLower(value)
		for _, o := range options {
			if value == o {
				return value, nil
			}
		}
		_, _ = fmt.Fprintf(out, "  Invalid value %q. Available: %s\n", value, joined)
	}
}
