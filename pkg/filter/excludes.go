package filter

// DefaultExcludes are path fragments skipped during batch ingest: version
// control internals, dependency trees and OS clutter that would only add
// noise to an index.
var DefaultExcludes = []string{
	// SCM / dev
	`.git`,
	`.svn`,
	`node_modules`,
	`__pycache__`,
	`.idea`,
	`.vscode`,

	// OS clutter
	`.DS_Store`,
	`Thumbs.db`,
	`$Recycle.Bin`,
	`System Volume Information`,

	// Office lock files
	`~$`,
}
