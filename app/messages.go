package app

// ExportDoneMsg reports the result of a clipboard copy or file write.
type ExportDoneMsg struct {
	Target string // "clipboard" or the file path
	Err    error
}

// SettingsSavedMsg reports the result of saving the config file.
type SettingsSavedMsg struct {
	Err error
}
