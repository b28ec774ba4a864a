// Package radio models the wireless hardware below the mode controller.
//
// Driver covers only the transition points the controller needs: operating
// mode selection, hardware addresses, soft-AP addressing and broadcast,
// promiscuous capture and disconnecting from a network. Every call reports
// whether the hardware applied it; a rejection matches ErrRejected.
//
// The radio is a single exclusive resource. Lock hands out a Lease to one
// Owner at a time so that the mode controller and the scanner never drive
// the hardware concurrently.
package radio
