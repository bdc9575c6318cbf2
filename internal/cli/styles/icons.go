package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconVersion   = "\uf02b" // tag
	IconGitBranch = "\ue725" // git branch
	IconCalendar  = "\uf073" // calendar
	IconGithub    = "\uf09b" // github
	IconHeart     = "\uf004" // heart
	IconGo        = "\ue627" // go gopher
	IconGlobe     = "\uf0ac" // globe

	IconCheck   = "\uf00c" // check
	IconX       = "\uf00d" // x
	IconWarning = "\uf071" // warning
	IconInfo    = "\uf05a" // info

	IconConfig   = "\ue615" // config
	IconDatabase = "\uf1c0" // database
	IconFile     = "\uf15b" // file
	IconCache    = "\uf49e" // cache
	IconTrash    = "\uf1f8" // trash
	IconClock    = "\uf017" // clock
	IconCursor   = "\uf054" // chevron-right

	// Market
	IconChart    = "\uf201" // line chart
	IconFire     = "\uf06d" // fire (trending)
	IconSparkles = "\uf005" // star (recently added)
	IconCoin     = "\uf15a" // bitcoin
	IconTrophy   = "\uf091" // trophy (top performer)
	IconHistory  = "\uf1da" // history (recently viewed)
	IconTheme    = "\uf042" // adjust (theme)
)
