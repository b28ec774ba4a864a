// Package web implements the route table of the configuration interface.
//
// The route table is bound once, when the mode controller first starts the
// access point. Administrative routes (/list, /run, /attack.json) are
// answered directly; firmware-embedded pages are served from the content
// catalog unless the node is configured to serve everything from storage;
// every other path goes through the content resolver.
package web
