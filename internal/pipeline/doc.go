// Package pipeline runs a homophones build as a sequence of steps.
//
// The standard pipeline assembled by Default is:
//  1. load: read and normalize the word lists into a vocabulary
//  2. lookup: look every vocabulary word up and collect raw pairs
//  3. aggregate: de-duplicate the pairs and derive the singles list
//  4. write: write the requested outputs
//
// Each step is implemented as a Step that receives the current Run and
// fills in its part.
//
// Design decision: We use a pipeline pattern instead of direct function calls
// because:
// 1. Each stage can be tested alone against a hand-built Run
// 2. Logging and cancellation are handled once, between steps
// 3. A failure stops the run before anything is written, so a fatal lookup
// error never leaves partial output behind
package pipeline
