package docs

import (
	"bufio"
	"os"
	"regexp"
	"slices"
	"strings"
	"testing"

	"github.com/etnz/hud/renderer"
)

func TestTopics(t *testing.T) {
	// Every topic listed in readme.md can be loaded, and every topic is listed.
	file, err := os.Open("readme.md")
	if err != nil {
		t.Fatalf("failed to open readme.md: %v", err)
	}
	defer file.Close()

	var listed []string
	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if m := topicRegex.FindStringSubmatch(scanner.Text()); len(m) > 1 {
			listed = append(listed, strings.TrimSpace(m[1]))
		}
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("error scanning readme.md: %v", err)
	}

	for _, topic := range listed {
		t.Run("load_"+topic, func(t *testing.T) {
			if _, err := Topic(topic); err != nil {
				t.Errorf("failed to get topic %q: %v", topic, err)
			}
		})
	}

	all, err := All()
	if err != nil {
		t.Fatal(err)
	}
	for _, topic := range all {
		if !slices.Contains(listed, topic) {
			t.Errorf("topic %q is not listed in readme.md", topic)
		}
	}
}

func TestTopics_Star(t *testing.T) {
	all, err := Topics("*")
	if err != nil {
		t.Fatal(err)
	}
	for _, title := range []string{"# Configuration", "# Spreadsheet", "# Template"} {
		if !strings.Contains(all, title) {
			t.Errorf("Topics(*) misses %q", title)
		}
	}
	if _, err := Topics("readme", "nope"); err == nil {
		t.Error("Topics() of an unknown topic should fail")
	}
}

func TestTemplateTopic(t *testing.T) {
	// Every placeholder documented exists in the default template.
	doc, err := Topic("template")
	if err != nil {
		t.Fatal(err)
	}
	known := renderer.Placeholders(renderer.Template)
	for _, key := range renderer.Placeholders(doc) {
		if !slices.Contains(known, key) {
			t.Errorf("documented placeholder %q is not in the default template", key)
		}
	}
}
