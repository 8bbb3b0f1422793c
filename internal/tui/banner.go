package tui

// bannerWidth is the column budget the ASCII title needs; narrower terminals
// get a plain-text title instead.
const bannerWidth = 44

const asciiBanner = ` __    __  _____  __________    __  ___  __
/ _\  /__\/__   \/__   \_   \/\ \ \/ _ \/ _\
\ \  /_\    / /\/  / /\// /\/  \/ / /_\/\ \
_\ \//__   / /    / //\/ /_/ /\  / /_\\ _\ \
\__/\__/   \/     \/ \____/\_\ \/\____/ \__/ `

// renderBanner returns the ASCII "SETTINGS" title when the terminal is wide
// enough, or a plain title otherwise. Zero width means the terminal size is
// not known yet.
func renderBanner(width int) string {
	if width != 0 && width < bannerWidth {
		return titleStyle.Render("SETTINGS")
	}
	return bannerStyle.Render(asciiBanner)
}
