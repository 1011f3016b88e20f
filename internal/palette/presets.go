package palette

// The built-in library. Order matters: the preset generator selects by index,
// and each preset's colors 0 and 3 are the shading endpoints.
func init() {
	Register("ember", []string{"#f25c54", "#f27059", "#f4845f", "#f79d65", "#f7b267"})
	Register("lagoon", []string{"#05668d", "#028090", "#00a896", "#02c39a", "#f0f3bd"})
	Register("orchid", []string{"#7400b8", "#6930c3", "#5e60ce", "#4ea8de", "#64dfdf"})
	Register("meadow", []string{"#99e2b4", "#78c6a3", "#469d89", "#248277", "#14746f"})
	Register("dusk", []string{"#355070", "#6d597a", "#b56576", "#e56b6f", "#eaac8b"})
	Register("citrus", []string{"#ffba08", "#faa307", "#f48c06", "#e85d04", "#dc2f02"})
	Register("glacier", []string{"#caf0f8", "#90e0ef", "#48cae4", "#0096c7", "#023e8a"})
	Register("rosewater", []string{"#ffcbf2", "#f3c4fb", "#ecbcfd", "#e2afff", "#deaaff"})
}
