package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"codeberg.org/snonux/textprep/internal"
)

// CreateRootCommand creates and configures the root cobra command. The
// caller sets RunE.
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "textprep <input> <output> <config> <lang>",
		Short: "Text normalization for speech and language corpora",
		Long: `textprep normalizes a UTF-8 text corpus for one target language.

Every line is cleaned of joiner characters, Latin words are transliterated
into the target script, numbers are spelled out, punctuation and configured
characters are removed, and anything outside the language's Unicode ranges
is dropped. Lines of the form "id<TAB>text" keep their id. Lines that end up
empty are omitted from the output.

Examples:
  textprep corpus.txt clean.txt config.yaml hi
  TEXTPREP_TRANSLITERATION_BACKEND=none textprep in.tsv out.tsv config.yaml ta`,
		Args:         cobra.ExactArgs(4),
		Version:      internal.Version,
		SilenceUsage: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if err := flags.SetArgs(args); err != nil {
				return err
			}
			InitConfig(flags.ConfigFile)
			slog.SetDefault(NewLogger(LoadSettings().LogLevel, os.Stderr))
			return nil
		},
	}

	return rootCmd
}
