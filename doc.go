// Package minimal adds terse accessors to the handles of package dom.
//
// Every accessor returns a typed result and a *Error. Call sites that
// prefer to crash on missing DOM state wrap the call in Must or Check:
//
//	doc := minimal.Must(minimal.GlobalDocument())
//	title := minimal.Must(doc.GetElementByIDHTML("title"))
//	title.ToggleClass("active")
//
// Class helpers treat the class attribute as a plain string: HasClass is
// a substring test and RemoveClass drops the first " "+name.
package minimal
