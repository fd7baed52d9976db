// Package utilcss generates a utility-class stylesheet from the class names
// that actually appear in a project's source files.
//
// Content files are scanned for candidate tokens ("p-4", "md:hover:bg-red-500/50",
// "w-[40%]"), each candidate is resolved against the theme, the variant set and
// any registered plugins, and the matching rules are assembled into one
// deterministic stylesheet. Candidates that name no utility are ignored.
//
// # Building
//
//	result, err := utilcss.Build(ctx, utilcss.Config{
//		Content:  []string{"web/**/*.{html,templ}"},
//		DarkMode: "class",
//		Theme: utilcss.ThemeConfig{
//			Extend: map[string]any{
//				"colors": map[string]any{"brand": "#1da1f2"},
//			},
//		},
//	})
//	if err != nil {
//		return err
//	}
//	os.WriteFile("static/app.css", []byte(result.CSS), 0o644)
//
// # Plugins
//
// Plugins contribute utilities and variants. Registration order decides
// which plugin wins when two claim the same class; built-in utilities are
// always consulted first.
//
//	cfg.Plugins = []plugin.Entry{
//		plugin.Static("scrollbars", map[string]map[string]string{
//			"no-scrollbar": {"scrollbar-width": "none"},
//		}),
//	}
//
// # CLI Tool
//
// utilcss also provides a CLI tool. Install with:
//
//	go install github.com/yacobolo/utilcss/cmd/utilcss@latest
package utilcss
