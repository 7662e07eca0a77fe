package model

// StagedModule is a rewritten module written under the staging directory.
type StagedModule struct {
	BaseName   string
	Path       Path
	Content    []byte
	References []ImportReference
}

// RunReport summarises one pipeline run.
type RunReport struct {
	State  State
	Staged []StagedModule
	Index  Path
	// Statements holds the re-export lines written to the index, in order.
	Statements []string
}

// ModuleListing describes a scanned module without staging it.
type ModuleListing struct {
	Module     SourceModule
	Hash       string // SHA-256 of the module file
	References []ImportReference
	Aliases    []Alias // parallel to References
}
