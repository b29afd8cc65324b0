package localeenv

// Static is a locale source with fixed answers. Useful in tests and in
// non-interactive programs where the preference is known up front.
type Static struct {
	Single string
	List   []string
}

// Languages returns the configured preference list.
func (s Static) Languages() []string {
	return s.List
}

// Language returns the configured single preference.
func (s Static) Language() string {
	return s.Single
}
