package input

// Help maps complete key sequences (in config notation) to explanations of
// what they do.
type Help = map[string]string

// GetHelp returns the help for all sequences reachable from this node, keyed
// relative to it.
func (n *Node) GetHelp() Help {
	result := Help{}

	if n.Action != nil {
		result[""] = n.Action.Explain()
		return result
	}
	for k, c := range n.Children {
		for partialCombo, explanation := range c.GetHelp() {
			result[ToConfigIdentifierString(k)+partialCombo] = explanation
		}
	}

	return result
}
