// counts word occurrences of a text file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/computerphysicslab/goPackages/goDebug"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"wordFreq/configlib"
	"wordFreq/pipelinelib"
)

/******************************************************************************/
/******************************************************************************/
/*********************** COMMAND **********************************************/
/******************************************************************************/
/******************************************************************************/

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	v := configlib.New()
	d := configlib.Default()
	var configFile string
	var verbose, debug bool

	rootCmd := &cobra.Command{
		Use:   "wordFreq input_file",
		Short: "Count word occurrences of a text file",
		Long: "wordFreq reads a text file, lowercases it, strips punctuation, splits it into words\n" +
			"and prints how many times each word appears, most frequent first.\n" +
			"Words with the same count are listed alphabetically.",
		Example:       "  wordFreq notes.txt\n  wordFreq --top 10 --format table --stopwords 'the|a|of' book.txt",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log.SetOutput(stderr)
			switch {
			case debug:
				log.SetLevel(log.DebugLevel)
			case verbose:
				log.SetLevel(log.InfoLevel)
			default:
				log.SetLevel(log.WarnLevel)
			}
			if err := configlib.BindFlags(v, cmd.Flags()); err != nil {
				return err
			}
			return configlib.ReadFile(v, configFile)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := configlib.Load(v)
			if err != nil {
				return err
			}
			if debug {
				// goDebug prints on os.Stdout, only free when the report goes to a file
				if cfg.Output != "" {
					goDebug.Print("config", cfg)
				} else {
					log.WithField("config", fmt.Sprintf("%+v", cfg)).Debug("effective config")
				}
			}
			log.WithField("file", args[0]).Info("counting words")

			return pipelinelib.Process(cfg, args[0], stdout)
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	flags := rootCmd.Flags()
	flags.StringVar(&configFile, "config", "", "YAML config file (default ./wordfreq.yaml when present)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "log progress to stderr")
	flags.BoolVar(&debug, "debug", false, "log debug details to stderr")
	flags.IntP(configlib.FlagNames[configlib.KeyTop], "n", d.Top, "number of top words to show, 0 for all")
	flags.StringP(configlib.FlagNames[configlib.KeyFormat], "f", string(d.Format), "report format: text, table, csv or json")
	flags.String(configlib.FlagNames[configlib.KeyStopwords], d.Stopwords, "words to ignore, separated by |")
	flags.Bool(configlib.FlagNames[configlib.KeyStem], d.Stem, "count english stems instead of words")
	flags.Bool(configlib.FlagNames[configlib.KeyIgnoreNumbers], d.IgnoreNumbers, "ignore numeric tokens")
	flags.Int(configlib.FlagNames[configlib.KeyMinLength], d.MinLength, "ignore words shorter than this")
	flags.Bool(configlib.FlagNames[configlib.KeyHTML], d.HTML, "strip markup from .html and .htm files")
	flags.String(configlib.FlagNames[configlib.KeyCorpus], d.Corpus, "reference corpus in all.num format, adds a keyness column")
	flags.Float64(configlib.FlagNames[configlib.KeyContrast], d.Contrast, "weight of the reference corpus on keyness")
	flags.Bool(configlib.FlagNames[configlib.KeyEntities], d.Entities, "also report named entities")
	flags.StringP(configlib.FlagNames[configlib.KeyOutput], "o", d.Output, "write the report to this file instead of stdout")

	return rootCmd
}

func run(args []string, stdout, stderr io.Writer) int {
	rootCmd := newRootCmd(stdout, stderr)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %s\n", err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
