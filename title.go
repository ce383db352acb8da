package dcmeta

// TitleElement is a validated dc:title element.
type TitleElement struct {
	// Namespace is the namespace string the element matched with: "dc" or
	// the Dublin Core URI, depending on the classifier's NamespaceMatch.
	Namespace string
	ID        ID
	Dir       Attr[Direction]
	Lang      Attr[XMLLang]
	Text      string
}

// Issues lists one issue per attribute that was present but invalid, with
// the path rewritten to the attribute. It returns nil when all attributes
// are absent or valid.
func (t TitleElement) Issues() Issues {
	var out Issues
	out = appendAttrIssues(out, "dir", t.Dir.State, t.Dir.Err)
	out = appendAttrIssues(out, "xml:lang", t.Lang.State, t.Lang.Err)
	return out
}

// Presence reports which attributes were seen and which were invalid.
func (t TitleElement) Presence() PresenceMap {
	pm := PresenceMap{}
	if t.ID.IsSet() {
		pm[Root().Attr("id").Pointer()] = PresenceSeen
	}
	attrs := PresenceMap{}
	if p := t.Dir.Presence(); p != 0 {
		attrs[Root().Attr("dir").Pointer()] = p
	}
	if p := t.Lang.Presence(); p != 0 {
		attrs[Root().Attr("xml:lang").Pointer()] = p
	}
	return mergePresenceMaps(pm, attrs)
}

func appendAttrIssues(dst Issues, attr string, st AttrState, err error) Issues {
	if st != AttrInvalid {
		return dst
	}
	path := Root().Attr(attr).Pointer()
	iss, ok := AsIssues(err)
	if !ok {
		return AppendIssues(dst, Issue{Path: path, Code: CodeInvalidFormat, Cause: err})
	}
	for _, it := range iss {
		it.Path = path
		dst = AppendIssues(dst, it)
	}
	return dst
}
