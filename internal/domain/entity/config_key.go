package entity

// ConfigKeyInfo documents one configuration key for `onramp config keys`.
type ConfigKeyInfo struct {
	// Key is the dotted path, e.g. "cache.duration".
	Key         string   `json:"key"`
	Type        string   `json:"type"`
	Default     string   `json:"default"`
	Description string   `json:"description"`
	Values      []string `json:"values,omitempty"`
	// Range is a human-readable numeric constraint such as "1-250".
	Range   string `json:"range,omitempty"`
	Section string `json:"section"`
}
