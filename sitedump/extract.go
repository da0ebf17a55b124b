package sitedump

import (
	"fmt"
	"os"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	mdplugin "github.com/JohannesKaufmann/html-to-markdown/plugin"
	"github.com/toothbrush/portal-dump/browser"
)

// extractPageText converts the currently rendered page to GitHub-flavoured
// Markdown and writes it next to the screenshot, swapping .png for .md.
// Screenshots are great for eyeballs, text extracts are great for grep.
func (s *Screenshotter) extractPageText(page browser.Pager, screenshotPath string) error {
	html, err := page.Content()
	if err != nil {
		return fmt.Errorf("sitedump: couldn't read page content: %w", err)
	}

	converter := md.NewConverter(fmt.Sprintf("portal.%s.cloudgenix.com", s.Region), true, nil)
	// Github flavoured Markdown knows about tables 👍
	converter.Use(mdplugin.GitHubFlavored())

	markdown, err := converter.ConvertString(html)
	if err != nil {
		return fmt.Errorf("sitedump: failed to convert page to Markdown: %w", err)
	}

	textPath := strings.TrimSuffix(screenshotPath, ".png") + ".md"
	if err := os.WriteFile(textPath, []byte(markdown), 0644); err != nil {
		return fmt.Errorf("sitedump: couldn't write text extract %s: %w", textPath, err)
	}

	return nil
}
