package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Hadidomena/caesarCipher/message"
	"github.com/Hadidomena/caesarCipher/resource"
)

func (a *app) encryptCmd() *cobra.Command {
	var shift int

	cmd := &cobra.Command{
		Use:   "encrypt [text]",
		Short: "Encrypt text with a fixed shift",
		Example: `  caesar encrypt --shift 2 hello
  jgnnq`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			draft := message.NewEncryptedDraft(strings.Join(args, " "), shift, nil)
			a.logger.Debug("Encrypted message", zap.Int("shift", draft.Shift()))
			fmt.Fprintln(cmd.OutOrStdout(), draft.EncryptedText())
			return nil
		},
	}

	cmd.Flags().IntVarP(&shift, "shift", "s", 0, "number of positions to shift each letter")
	_ = cmd.MarkFlagRequired("shift")
	return cmd
}

func (a *app) decryptCmd() *cobra.Command {
	var file string
	var all bool

	cmd := &cobra.Command{
		Use:   "decrypt [text]",
		Short: "Recover the plaintext of a ciphertext with an unknown shift",
		Long: `Tries all 26 shifts and reports the one whose output contains the most
dictionary words. Ties go to the lowest shift.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := ciphertextInput(file, args)
			if err != nil {
				return err
			}

			words, err := a.dictionary(cmd.Context())
			if err != nil {
				return err
			}

			target := message.NewDecryptionTarget(text, words)
			if all {
				printCandidates(cmd.OutOrStdout(), target.Candidates())
				return nil
			}

			result := target.Decrypt()
			a.logResult(result)
			printResult(cmd.OutOrStdout(), result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "read the ciphertext from a file")
	cmd.Flags().BoolVar(&all, "all", false, "print every candidate with its word count")
	return cmd
}

func (a *app) storyCmd() *cobra.Command {
	var story string

	cmd := &cobra.Command{
		Use:   "story",
		Short: "Decrypt the configured story file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if story == "" {
				story = a.cfg.Story
			}
			text, err := resource.ReadStory(story)
			if err != nil {
				return err
			}

			words, err := a.dictionary(cmd.Context())
			if err != nil {
				return err
			}

			result := message.NewDecryptionTarget(text, words).Decrypt()
			a.logResult(result)
			printResult(cmd.OutOrStdout(), result)
			return nil
		},
	}

	cmd.Flags().StringVar(&story, "story", "", "story file (overrides config)")
	return cmd
}

// selftestCmd runs the reference scenarios: encrypting "hello" with shift 2,
// breaking "jgnnq", and breaking the story file.
func (a *app) selftestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "selftest",
		Short: "Run the reference encrypt/decrypt scenarios",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			words, err := a.dictionary(cmd.Context())
			if err != nil {
				return err
			}

			var failed []string

			draft := message.NewEncryptedDraft("hello", 2, words)
			fmt.Fprintln(out, "Expected Output: jgnnq")
			fmt.Fprintln(out, "Actual Output:", draft.EncryptedText())
			if draft.EncryptedText() != "jgnnq" {
				failed = append(failed, "encrypt")
			}

			result := message.NewDecryptionTarget("jgnnq", words).Decrypt()
			fmt.Fprintln(out, "Expected Output: (24, hello)")
			fmt.Fprintln(out, "Actual Output:", formatResult(result))
			if !result.Found || result.Shift != 24 || result.Plaintext != "hello" {
				failed = append(failed, "decrypt")
			}

			story, err := resource.ReadStory(a.cfg.Story)
			if err != nil {
				return err
			}
			storyResult := message.NewDecryptionTarget(story, words).Decrypt()
			a.logResult(storyResult)
			fmt.Fprintln(out, "Actual Output:", formatResult(storyResult))

			if len(failed) > 0 {
				return fmt.Errorf("selftest failed: %s", strings.Join(failed, ", "))
			}
			return nil
		},
	}
}

func ciphertextInput(file string, args []string) (string, error) {
	if file != "" {
		if len(args) > 0 {
			return "", errors.New("pass either --file or text arguments, not both")
		}
		return resource.ReadStory(file)
	}
	if len(args) == 0 {
		return "", errors.New("no ciphertext given")
	}
	return strings.Join(args, " "), nil
}

func (a *app) logResult(result message.Result) {
	if !result.Found {
		a.logger.Debug("No shift produced a dictionary word")
		return
	}
	a.logger.Debug("Decrypted message",
		zap.Int("shift", result.Shift),
		zap.Int("valid_words", result.ValidWords))
}

func formatResult(result message.Result) string {
	if !result.Found {
		return "(none, none)"
	}
	return fmt.Sprintf("(%d, %s)", result.Shift, result.Plaintext)
}

func printResult(w io.Writer, result message.Result) {
	if !result.Found {
		fmt.Fprintln(w, "no valid words found")
		return
	}
	fmt.Fprintf(w, "Shift: %d\n", result.Shift)
	fmt.Fprintf(w, "Valid words: %d\n", result.ValidWords)
	fmt.Fprintf(w, "Plaintext: %s\n", result.Plaintext)
}

func printCandidates(w io.Writer, candidates []message.Candidate) {
	for _, c := range candidates {
		fmt.Fprintf(w, "%2d  %3d  %s\n", c.Shift, c.ValidWords, c.Plaintext)
	}
}
