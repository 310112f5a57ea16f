package cmd

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/AshrafGalibShaik/Universal-Document-Parser-Library/pkg/batch"
	"github.com/AshrafGalibShaik/Universal-Document-Parser-Library/pkg/filter"
	"github.com/AshrafGalibShaik/Universal-Document-Parser-Library/pkg/parser"
	"github.com/AshrafGalibShaik/Universal-Document-Parser-Library/pkg/source"
	"github.com/AshrafGalibShaik/Universal-Document-Parser-Library/pkg/state"
	"github.com/AshrafGalibShaik/Universal-Document-Parser-Library/pkg/utils"
)

var (
	// SMB
	smbHost  string
	smbShare string
	username string
	password string
	domain   string
	ntHash   string
	ccache   string

	// Batch filters
	filenames  []string
	extensions []string
	content    []string

	// Settings
	threads     int
	metaOnly    bool
	listFormats bool
	directFmt   string
	outputFile  string
	resumeFile  string
	noExclude   bool
	verbose     bool
)

var rootCmd = &cobra.Command{
	Use:   "docparse [files or directories]",
	Short: "docparse: Extract normalized text and metadata from documents",
	Long: `Docparse is a Go port of the Universal Document Parser library.
It extracts plain text plus structured metadata from txt, csv, json,
xml/html, markdown, pdf, docx and xlsx files.

Targets can be:
- A single file (parsed and printed)
- A directory (ingested recursively)
- A path on an SMB share (with --host and --share)
- Standard input (with --format)`,
	Run: func(cmd *cobra.Command, args []string) {
		if listFormats {
			for _, name := range parser.ListFormats() {
				fmt.Println(name)
			}
			return
		}

		if err := utils.InitLogger("docparse.log"); err != nil {
			fmt.Printf("Failed to init logger: %v\n", err)
		}
		defer utils.CloseLogger()

		if verbose {
			os.Setenv("DEBUG", "true")
		}

		// Direct mode: content comes from stdin, format is declared.
		if directFmt != "" {
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				utils.LogError("Failed to read stdin: %v", err)
				return
			}
			eng := parser.NewEngine(&source.Local{})
			printDocument(eng.OpenDirect(string(data), directFmt))
			return
		}

		if len(args) == 0 {
			cmd.Help()
			return
		}

		// Pick the byte source and walker: local filesystem by default,
		// a mounted SMB share when --host is given.
		var src source.ByteSource = &source.Local{}
		var fsys batch.FS = &batch.LocalFS{}
		if smbHost != "" {
			if smbShare == "" {
				utils.LogError("--host requires --share")
				return
			}
			smb, err := source.DialSMB(smbHost, smbShare, source.Credentials{
				Username: username,
				Password: password,
				Domain:   domain,
				Hash:     ntHash,
				CCache:   ccache,
			})
			if err != nil {
				utils.LogError("SMB connection to \\\\%s\\%s failed: %v", smbHost, smbShare, err)
				return
			}
			defer smb.Close()
			src = smb
			fsys = &batch.SMBFS{Share: smb.Share()}
		}

		eng := parser.NewEngine(src)

		filt, err := filter.New(filter.Config{
			Filenames:  filenames,
			Extensions: extensions,
			Content:    content,
		})
		if err != nil {
			utils.LogError("Invalid filter pattern: %v", err)
			return
		}
		if noExclude {
			utils.LogWarning("Disabling default exclusions")
			filt.ExcludeRegex = nil
		}

		var reporter batch.Reporter
		if outputFile != "" {
			jr, err := batch.NewJSONReporter(outputFile)
			if err != nil {
				utils.LogError("Failed to create reporter: %v", err)
				return
			}
			defer jr.Close()
			reporter = jr
		} else {
			reporter = &batch.ConsoleReporter{}
		}

		var stateMgr *state.Manager
		if resumeFile != "" {
			stateMgr, err = state.NewManager(resumeFile)
			if err != nil {
				utils.LogError("Failed to init state manager: %v", err)
				return
			}
			utils.LogInfo("Resume mode enabled. Loaded state from %s", resumeFile)
		}

		dedup := utils.NewDeduplicator()
		runner := batch.NewRunner(batch.Config{Threads: threads}, eng, filt, fsys, dedup, reporter)
		runner.State = stateMgr

		for _, arg := range args {
			if isSingleFile(arg, eng) {
				doc, err := eng.Open(arg)
				if err != nil {
					utils.LogError("%v", err)
					continue
				}
				printDocument(doc)
				continue
			}
			runner.Run(arg)
		}
	},
}

// isSingleFile decides between one-shot parse and batch ingest. Local paths
// are stat'ed; on SMB a claimed extension means a file, anything else is
// walked as a directory.
func isSingleFile(arg string, eng *parser.Engine) bool {
	if smbHost == "" {
		fi, err := os.Stat(arg)
		return err == nil && !fi.IsDir()
	}
	return eng.CanOpen(arg)
}

func printDocument(doc *parser.Document) {
	if metaOnly {
		utils.Info("[%s]\n", doc.Format)
		keys := make([]string, 0, len(doc.Metadata))
		for k := range doc.Metadata {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Printf("  %s = %s\n", utils.Bold(k), doc.Metadata[k])
		}
		return
	}
	fmt.Print(doc.Content)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// SMB
	rootCmd.PersistentFlags().StringVar(&smbHost, "host", "", "SMB host to read from")
	rootCmd.PersistentFlags().StringVar(&smbShare, "share", "", "SMB share name")
	rootCmd.PersistentFlags().StringVarP(&username, "username", "u", "", "Username for SMB authentication")
	rootCmd.PersistentFlags().StringVarP(&password, "password", "p", "", "Password for SMB authentication")
	rootCmd.PersistentFlags().StringVarP(&domain, "domain", "d", "", "Domain for SMB authentication")
	rootCmd.PersistentFlags().StringVarP(&ntHash, "hash", "H", "", "NTLM hash for SMB authentication")
	rootCmd.PersistentFlags().StringVar(&ccache, "ccache", "", "Kerberos CCache file path (not supported, rejected)")

	// Batch filters
	rootCmd.PersistentFlags().StringSliceVarP(&filenames, "filenames", "f", []string{}, "Only ingest filenames matching these regexes")
	rootCmd.PersistentFlags().StringSliceVarP(&extensions, "extensions", "e", []string{}, "Only ingest files with these extensions")
	rootCmd.PersistentFlags().StringSliceVarP(&content, "content", "c", []string{}, "Only report documents whose text matches these regexes")

	// Settings
	rootCmd.PersistentFlags().IntVarP(&threads, "threads", "t", 5, "Concurrent parse workers for batch ingest")
	rootCmd.PersistentFlags().BoolVarP(&metaOnly, "meta", "m", false, "Print metadata instead of content")
	rootCmd.PersistentFlags().BoolVar(&listFormats, "list-formats", false, "List supported formats and exit")
	rootCmd.PersistentFlags().StringVar(&directFmt, "format", "", "Treat stdin as already-extracted content with this format tag")
	rootCmd.PersistentFlags().StringVarP(&outputFile, "output", "o", "", "Output file for batch results (JSON lines)")
	rootCmd.PersistentFlags().StringVar(&resumeFile, "resume", "", "Resume state file (JSON)")
	rootCmd.PersistentFlags().BoolVar(&noExclude, "no-exclude", false, "Disable default exclusions")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show debugging messages")
}
