package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/eringen/mdblog/internal/prompt"
	"github.com/eringen/mdblog/scaffold"
)

// newPrompter picks the interactive form for terminals and line input otherwise.
var newPrompter = func(cmd *cobra.Command) prompt.Prompter {
	if f, ok := cmd.InOrStdin().(*os.File); ok {
		return prompt.New(f, cmd.OutOrStdout())
	}
	return prompt.LinePrompter{In: cmd.InOrStdin(), Out: cmd.OutOrStdout()}
}

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Create a new post and add it to the manifest",
	Long: `The new command asks for a title, description, category, tags, author
and featured image, writes a post from the built-in template into the
content directory and puts it first in posts.json. An existing post with
the same filename is never overwritten.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cmd.Println("Creating a new blog post...")
		cmd.Println()

		answers, err := newPrompter(cmd).Ask(prompt.PostQuestions)
		if err != nil {
			return err
		}

		s := &scaffold.Scaffolder{
			ContentDir:    appConfig.ContentDir,
			ManifestName:  appConfig.ManifestName,
			DefaultAuthor: appConfig.Name,
		}
		res, err := s.Create(scaffold.PostInput{
			Title:       answers["title"],
			Description: answers["description"],
			Category:    answers["category"],
			Tags:        answers["tags"],
			Author:      answers["author"],
			Image:       answers["image"],
		})
		if err != nil {
			return err
		}
		appLog.PostCreated(res.Path, res.Slug)

		cmd.Println()
		cmd.Println("New post created successfully!")
		cmd.Printf("File: %s\n", filepath.ToSlash(res.Path))
		cmd.Printf("URL: %s\n", res.URL)
		cmd.Println()
		cmd.Println("Don't forget to run `mdblog build` to refresh the sitemap and RSS feed.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(newCmd)
}
