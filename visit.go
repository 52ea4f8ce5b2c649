package tracery

// A Visitor is called for every node in a rule. next descends into the
// rules carried by a tag's actions; skip the call to prune the walk.
type Visitor func(n Node, next func() error) error

// Visit walks the rule's nodes depth-first.
func Visit(rule Rule, visitor Visitor) error {
	for _, n := range rule {
		if err := visitNode(n, visitor); err != nil {
			return err
		}
	}
	return nil
}

func visitNode(n Node, visitor Visitor) error {
	return visitor(n, func() error {
		tag, ok := n.(Tag)
		if !ok {
			return nil
		}
		for _, action := range tag.Actions {
			if err := Visit(action.Rule, visitor); err != nil {
				return err
			}
		}
		return nil
	})
}
