package cmd

import (
	stderrors "errors"
	"fmt"
	"os"

	"copybuffer/pkg/buffer"
	"copybuffer/pkg/clipboard"
	"copybuffer/pkg/deps"
	"copybuffer/pkg/errors"
	"copybuffer/pkg/imaging"
	"copybuffer/pkg/logger"
	"copybuffer/pkg/token"

	"github.com/spf13/cobra"
)

var (
	Version   string
	BuildTime string
	GitCommit string
)

var (
	versionFlag    bool
	headerFlag     bool
	attachmentFlag bool
	tokenFlag      bool
	debugFlag      bool
	exportFlag     bool
)

var rootCmd = &cobra.Command{
	Use:   "cb [flags] [path|- ...]",
	Short: "Copy file contents or images to the clipboard",
	Long: `CopyBuffer copies the contents of one or more files, or piped input, to the
system clipboard. Text files can be prefixed with a file-path header or
wrapped in a chat-attachment block before copying; image files (.png, .jpg,
.jpeg, .bmp, .gif) are copied as rendered PNG image payloads. A literal '-'
among the paths reads standard input instead.`,
	Example: `  # Copy one file
  cb notes.txt

  # Copy several files with path headers
  cb --header main.go util.go

  # Copy piped input and show its token count
  git diff | cb -t -

  # Copy a screenshot as an image payload
  cb screenshot.png

  # Print what is currently on the clipboard
  cb -e`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := "warn"
		if envLevel := os.Getenv("CB_LOG_LEVEL"); envLevel != "" {
			level = envLevel
		}
		if debugFlag {
			level = "debug"
		}
		logger.SetLevel(level)
	},
	RunE: run,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		exitCode := errors.HandleReturn(err)
		os.Exit(int(exitCode))
	}
}

func run(cmd *cobra.Command, args []string) error {
	// Hard precondition: without a usable clipboard stack nothing below can
	// work, so report and stop before touching any input.
	if missing := deps.Check(); len(missing) > 0 {
		deps.Report(missing)
		return nil
	}

	if versionFlag {
		fmt.Printf("This is the CopyBuffer application, version %s\n", version())
		return nil
	}

	if len(args) == 0 {
		if exportFlag {
			content, err := clipboard.ReadText()
			if err != nil {
				return err
			}
			fmt.Println("Exported contents:\n" + content)
		}
		// No paths and no export: nothing to do, and stdin is never read.
		return nil
	}

	if buffer.HasStdinSentinel(args) {
		return runStdin(cmd)
	}
	return runFiles(args)
}

func runStdin(cmd *cobra.Command) error {
	item, err := buffer.ReadStdin(cmd.InOrStdin())
	if err != nil {
		return err
	}

	if tokenFlag {
		n, err := token.NewCounter().Count(item.Content)
		if err != nil {
			return err
		}
		fmt.Printf("STDIN contains %d tokens.\n", n)
	}

	payload := buffer.Combine([]buffer.Item{item}, formatOptions())
	if err := clipboard.WriteText(payload); err != nil {
		return err
	}

	fmt.Println("STDIN copied to the clipboard successfully!")
	if exportFlag {
		fmt.Println("Exported contents:\n" + payload)
	}
	return nil
}

func runFiles(paths []string) error {
	var items []buffer.Item

	for _, path := range paths {
		logger.Debug().Str("path", path).Msg("processing file")

		if buffer.IsImagePath(path) {
			if err := copyImage(path); err != nil {
				return err
			}
			fmt.Printf("%s copied to the clipboard successfully!\n", path)
			continue
		}

		item, err := buffer.ReadFile(path)
		if err != nil {
			var notFound *buffer.NotFoundError
			if stderrors.As(err, &notFound) {
				fmt.Printf("Error: File '%s' not found.\n", path)
				continue
			}
			return err
		}
		items = append(items, item)
	}

	if tokenFlag {
		counter := token.NewCounter()
		for _, item := range items {
			n, err := counter.Count(item.Content)
			if err != nil {
				return err
			}
			fmt.Printf("%s contains %d tokens.\n", item.Path, n)
		}
	}

	if len(items) == 0 {
		return nil
	}

	payload := buffer.Combine(items, formatOptions())
	logger.Debug().Str("payload", payload).Msg("combined payload ready")

	if err := clipboard.WriteText(payload); err != nil {
		return err
	}
	logger.Debug().Msg("clipboard write complete")

	if len(items) == 1 {
		fmt.Printf("%s copied to the clipboard successfully!\n", items[0].Path)
	} else {
		fmt.Println("All files copied to the clipboard successfully!")
	}
	if exportFlag {
		fmt.Println("Exported contents:\n" + payload)
	}
	return nil
}

func copyImage(path string) error {
	data, err := imaging.LoadPNG(path)
	if err != nil {
		return err
	}
	return clipboard.WriteImagePNG(data)
}

func formatOptions() buffer.Options {
	return buffer.Options{
		Header:     headerFlag,
		Attachment: attachmentFlag,
	}
}

func version() string {
	if Version == "" {
		return "dev"
	}
	return Version
}

func init() {
	rootCmd.Flags().BoolVar(&versionFlag, "version", false, "Display the application version")
	rootCmd.Flags().BoolVar(&headerFlag, "header", false, "Include a file-path header for each text file")
	rootCmd.Flags().BoolVarP(&attachmentFlag, "attachment", "a", false, "Format output as a chat attachment block")
	rootCmd.Flags().BoolVarP(&tokenFlag, "token", "t", false, "Display the token count per input (cl100k_base)")
	rootCmd.Flags().BoolVar(&debugFlag, "debug", false, "Enable debug trace output")
	rootCmd.Flags().BoolVarP(&exportFlag, "export", "e", false, "Print the exact text placed on the clipboard")
}
