package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-vault-reconcile/models"
	"github.com/fatih/color"
)

var (
	headerColor = color.New(color.FgCyan, color.Bold)
	okColor     = color.New(color.FgGreen)
	warnColor   = color.New(color.FgYellow)
	dimColor    = color.New(color.FgHiBlack)
	idColor     = color.New(color.FgMagenta)
	accentColor = color.New(color.Bold)
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printCipher(w io.Writer, c models.Cipher, indent string) {
	fmt.Fprintf(w, "%s%s %s %s\n", indent, idColor.Sprint(c.ID), accentColor.Sprint(c.Name), dimColor.Sprintf("[%s]", c.Type))
	if c.Login != nil && c.Login.Username != "" {
		fmt.Fprintf(w, "%s  user: %s\n", indent, c.Login.Username)
	}
	for _, uri := range c.URIs {
		match := "default"
		if uri.Match != models.MatchTypeUnset {
			match = uri.Match.String()
		}
		fmt.Fprintf(w, "%s  uri:  %s %s\n", indent, uri.URI, dimColor.Sprintf("(%s)", match))
	}
}

func printDuplicateGroups(w io.Writer, groups []models.DuplicateGroup) {
	if len(groups) == 0 {
		okColor.Fprintln(w, "No duplicates found")
		return
	}

	headerColor.Fprintf(w, "%d duplicate group(s)\n", len(groups))
	for i, g := range groups {
		fmt.Fprintf(w, "\n%s %s accuracy %s\n",
			accentColor.Sprintf("#%d", i+1),
			dimColor.Sprint(g.ID),
			warnColor.Sprintf("%.2f", g.Accuracy))
		for _, c := range g.Ciphers {
			printCipher(w, c, "  ")
		}
	}
}

func printBroadURIs(w io.Writer, groups []models.BroadURIGroup) {
	if len(groups) == 0 {
		return
	}

	warnColor.Fprintf(w, "\n%d broad URI(s)\n", len(groups))
	for _, g := range groups {
		domain, uri, _ := strings.Cut(g.Value, "|")
		fmt.Fprintf(w, "  %s %s on %s\n", accentColor.Sprint(domain), uri, idColor.Sprint(g.Cipher.ID))
	}
}
