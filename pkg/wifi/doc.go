// Package wifi implements the node's operating mode controller.
//
// A Controller owns the access point settings and the operating mode
// (OFF, AP or STATION). Start brings the access point up with validated
// settings, Stop drops to station mode, Resume restores the access point
// after an interruption such as a scan, and Tick services the captive
// portal DNS redirect from the host loop.
//
// Settings are validated field by field. A rejected field keeps its previous
// value and is reported on the diagnostic channel; the remaining fields
// still apply.
package wifi
