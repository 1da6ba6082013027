package card

// WalkElements visits every element in the card depth-first in document
// order, descending into containers, columns, image sets, action sets, and
// the cards nested under Action.ShowCard.
func (c *Card) WalkElements(fn func(Element)) {
	if c == nil || fn == nil {
		return
	}
	walkElementList(c.Body, fn)
	for _, act := range c.Actions {
		walkActionElements(act, fn)
	}
	walkActionElements(c.SelectAction, fn)
}

// WalkActions visits every action in the card depth-first in document order,
// including select actions and actions nested under ShowCard cards.
func (c *Card) WalkActions(fn func(Action)) {
	if c == nil || fn == nil {
		return
	}
	for _, el := range c.Body {
		walkElementActions(el, fn)
	}
	for _, act := range c.Actions {
		walkAction(act, fn)
	}
	walkAction(c.SelectAction, fn)
}

func walkElementList(els []Element, fn func(Element)) {
	for _, el := range els {
		walkElement(el, fn)
	}
}

func walkElement(el Element, fn func(Element)) {
	if el == nil {
		return
	}
	fn(el)
	switch t := el.(type) {
	case *Container:
		walkElementList(t.Items, fn)
		walkActionElements(t.SelectAction, fn)
	case *ColumnSet:
		for _, col := range t.Columns {
			walkElement(col, fn)
		}
		walkActionElements(t.SelectAction, fn)
	case *Column:
		walkElementList(t.Items, fn)
		walkActionElements(t.SelectAction, fn)
	case *ImageSet:
		for _, img := range t.Images {
			walkElement(img, fn)
		}
	case *ActionSet:
		for _, act := range t.Actions {
			walkActionElements(act, fn)
		}
	case *Image:
		walkActionElements(t.SelectAction, fn)
	}
}

func walkActionElements(act Action, fn func(Element)) {
	if sc, ok := act.(*ShowCardAction); ok && sc.Card != nil {
		sc.Card.WalkElements(fn)
	}
}

func walkElementActions(el Element, fn func(Action)) {
	if el == nil {
		return
	}
	switch t := el.(type) {
	case *Container:
		for _, child := range t.Items {
			walkElementActions(child, fn)
		}
		walkAction(t.SelectAction, fn)
	case *ColumnSet:
		for _, col := range t.Columns {
			walkElementActions(col, fn)
		}
		walkAction(t.SelectAction, fn)
	case *Column:
		for _, child := range t.Items {
			walkElementActions(child, fn)
		}
		walkAction(t.SelectAction, fn)
	case *ActionSet:
		for _, act := range t.Actions {
			walkAction(act, fn)
		}
	case *Image:
		walkAction(t.SelectAction, fn)
	}
}

func walkAction(act Action, fn func(Action)) {
	if act == nil {
		return
	}
	fn(act)
	if sc, ok := act.(*ShowCardAction); ok && sc.Card != nil {
		sc.Card.WalkActions(fn)
	}
}
