package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/polyfloyd/glinfo"
)

const (
	colorPrimary = lipgloss.Color("#7C3AED")
	colorSuccess = lipgloss.Color("#10B981")
	colorError   = lipgloss.Color("#EF4444")
	colorMuted   = lipgloss.Color("#6B7280")
)

type check struct {
	extension string
	supported bool
}

// result is everything that was learned during a single run.
type result struct {
	snapshot glinfo.Snapshot
	checks   []check
}

type reportStyles struct {
	header, label, yes, no lipgloss.Style
}

func newReportStyles(w io.Writer) reportStyles {
	// Bind to the output so colors are only used if it is a terminal.
	r := lipgloss.NewRenderer(w)
	return reportStyles{
		header: r.NewStyle().Bold(true).Foreground(colorPrimary),
		label:  r.NewStyle().Foreground(colorMuted),
		yes:    r.NewStyle().Foreground(colorSuccess),
		no:     r.NewStyle().Foreground(colorError),
	}
}

func printReport(w io.Writer, opts options, res result) {
	st := newReportStyles(w)
	snap := res.snapshot
	field := func(label, value string) {
		fmt.Fprintf(w, " . %s: %s\n", st.label.Render(fmt.Sprintf("%-12s", label)), value)
	}
	list := func(names []string) {
		for i, name := range names {
			fmt.Fprintf(w, "%5d. %s\n", i+1, name)
		}
	}

	fmt.Fprintln(w, st.header.Render(">>> OpenGL"))
	if opts.info {
		retrieval := "single string"
		if snap.IndexedExtensions {
			retrieval = "indexed"
		}
		field("Vendor", snap.Vendor)
		field("Renderer", snap.Renderer)
		field("Version", snap.VersionString)
		field("GLSL", snap.ShadingLanguageVersionString)
		field("Profile", fmt.Sprintf("%v (%s)", snap.Profile, retrieval))
		field("Shader Model", glinfo.ClassifyTier(snap).String())
		total := fmt.Sprintf("%d total", snap.ExtensionCount)
		if snap.ExtensionsTruncated {
			total += fmt.Sprintf(", listing truncated at %d bytes", glinfo.MaxExtensionsLength)
		}
		field("Extensions", total)
	}
	if opts.extensions {
		list(snap.ExtensionList())
	}

	if snap.UtilityName != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, st.header.Render(">>> "+snap.UtilityName))
		if opts.info {
			field("Version", snap.UtilityVersionString)
			field("Extensions", fmt.Sprintf("%d total", snap.UtilityExtensionCount))
		}
		if opts.extensions {
			list(snap.UtilityExtensionList())
		}
	}

	if len(res.checks) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, st.header.Render(">>> Extension support"))
		for _, c := range res.checks {
			status := st.no.Render("not supported")
			if c.supported {
				status = st.yes.Render("supported")
			}
			fmt.Fprintf(w, " . %s: %s\n", c.extension, status)
		}
	}
}
