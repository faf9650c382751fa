// Package gridflex provides a pure-Go grid and flex layout engine.
//
// Users import this single package for the layout API: node construction,
// grid templates, track descriptors and the layout entry points. Scene files,
// text measurement and PNG rendering live behind the gridflex command.
package gridflex
