package activity

// ListOptions provides filtering options for listing activity.
type ListOptions struct {
	Type   *Type
	Limit  int
	Offset int
}
