package version

// Version represents the Major.Minor.Patch version tag
// from GIT, supplied at build time - else 'dev' as a
// default
var Version string = "dev"
