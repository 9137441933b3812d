package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/veldt-labs/canopy-cli/internal/core/domain"
)

var (
	articlesTable  string
	articlesFolder string
	articlesJSON   bool
)

var articlesCmd = &cobra.Command{
	Use:   "articles",
	Short: "Browse indexed articles",
	Long:  `List articles, show one by slug, or list the folders they live in.`,
}

var articlesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List indexed articles",
	Args:  cobra.NoArgs,
	RunE:  runArticlesList,
}

var articlesShowCmd = &cobra.Command{
	Use:   "show [slug]",
	Short: "Print one article",
	Args:  cobra.ExactArgs(1),
	RunE:  runArticlesShow,
}

var articlesFoldersCmd = &cobra.Command{
	Use:   "folders",
	Short: "List article folders",
	Args:  cobra.NoArgs,
	RunE:  runArticlesFolders,
}

func init() {
	articlesCmd.PersistentFlags().StringVarP(&articlesTable, "table", "t", "", "table to read (default from config)")
	articlesListCmd.Flags().StringVarP(&articlesFolder, "folder", "f", "", "only list articles in this folder")
	articlesListCmd.Flags().BoolVar(&articlesJSON, "json", false, "output as JSON")

	articlesCmd.AddCommand(articlesListCmd)
	articlesCmd.AddCommand(articlesShowCmd)
	articlesCmd.AddCommand(articlesFoldersCmd)
	rootCmd.AddCommand(articlesCmd)
}

func runArticlesList(cmd *cobra.Command, _ []string) error {
	if articleService == nil {
		return errors.New("article service not configured")
	}

	ctx := cmd.Context()
	table := resolveTable(articlesTable)

	var (
		articles []domain.Article
		err      error
	)
	if articlesFolder != "" {
		articles, err = articleService.GetByFolder(ctx, table, articlesFolder)
	} else {
		articles, err = articleService.GetAll(ctx, table)
	}
	if err != nil {
		return fmt.Errorf("failed to list articles: %w", err)
	}

	if articlesJSON {
		data, err := json.MarshalIndent(articles, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal articles: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(articles) == 0 {
		cmd.Println("No articles found.")
		return nil
	}

	for i := range articles {
		cmd.Printf("  %s\n", articles[i].Slug)
		cmd.Printf("    Title:  %s\n", articles[i].Title)
		cmd.Printf("    Folder: %s\n", articles[i].Folder)
		if len(articles[i].Tags) > 0 {
			cmd.Printf("    Tags:   %s\n", strings.Join(articles[i].Tags, ", "))
		}
		cmd.Println()
	}

	cmd.Printf("Total: %d articles\n", len(articles))
	return nil
}

func runArticlesShow(cmd *cobra.Command, args []string) error {
	if articleService == nil {
		return errors.New("article service not configured")
	}

	article, err := articleService.GetBySlug(cmd.Context(), resolveTable(articlesTable), args[0])
	if err != nil {
		return fmt.Errorf("failed to get article: %w", err)
	}

	cmd.Printf("Article: %s\n\n", article.Slug)
	cmd.Printf("  Title:   %s\n", article.Title)
	cmd.Printf("  Folder:  %s\n", article.Folder)
	if len(article.Tags) > 0 {
		cmd.Printf("  Tags:    %s\n", strings.Join(article.Tags, ", "))
	}
	cmd.Printf("  Created: %s\n", article.CreatedAt.Format("2006-01-02 15:04:05"))
	cmd.Printf("  Updated: %s\n", article.UpdatedAt.Format("2006-01-02 15:04:05"))
	cmd.Println()
	cmd.Println(article.Content)
	return nil
}

func runArticlesFolders(cmd *cobra.Command, _ []string) error {
	if articleService == nil {
		return errors.New("article service not configured")
	}

	folders, err := articleService.GetFolders(cmd.Context(), resolveTable(articlesTable))
	if err != nil {
		return fmt.Errorf("failed to list folders: %w", err)
	}

	if len(folders) == 0 {
		cmd.Println("No folders found.")
		return nil
	}

	for _, folder := range folders {
		cmd.Printf("  %s\n", folder)
	}
	cmd.Printf("Total: %d folders\n", len(folders))
	return nil
}
