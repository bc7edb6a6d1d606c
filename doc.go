// Package conceptgate provides a human-in-the-loop approval gate for
// clothing concept evaluation pipelines.
//
// An upstream analysis is turned into an approval request and routed to a
// reviewer channel; the reviewer's free-form reply is classified into a
// routing decision, and the matching outcome document (development report or
// decision-notification letter) is rendered and persisted.
//
// The package comes with pluggable service layers:
//
//   - approval - request emission, reply pairing and decision routing
//   - review   - the decision classifier over reviewer replies
//   - report   - outcome document rendering and persistence
//   - concept  - concept metadata parsing and validation
//
// Conceptgate is designed to be embedded in host applications. End-users
// typically interact via the high-level Service façade exposed by the root
// package:
//
//	srv := conceptgate.New()
//	stop := approval.AutoApprove(ctx, srv.Approval(), 10*time.Millisecond)
//	defer stop()
//	out, _ := srv.Review(ctx, &conceptgate.ReviewInput{Analysis: analysisText})
//
// For more details see the README and individual sub-packages.
package conceptgate
