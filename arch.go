package dynaudnorm

// ClassifyArchitecture maps a GOARCH value to its architecture label.
// Only the x86 family is supported.
func ClassifyArchitecture(goarch string) (string, error) {
	switch goarch {
	case "amd64":
		return "x64", nil
	case "386":
		return "x86", nil
	default:
		return "", unsupported(KindArchitecture, "GOARCH=%s", goarch)
	}
}
