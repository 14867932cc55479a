package report

// Process-level messages printed by the front-ends.
const (
	MessageInterrupted     = "You interrupted, no suggestion will be provided!"
	MessageFault           = "Some error occurred - no suggestion can be provided"
	MessageThanks          = "Thanks for using the algorithm selector, hope our suggestion will be useful"
	MessageNeedsDiscussion = "None of the rules matched your answers. Please talk to an ML expert about this problem."
)
