package saxlike

import "encoding/xml"

// Handler receives the events produced by Parser
type Handler interface {
	StartDocument()
	EndDocument()
	StartElement(xml.StartElement)
	EndElement(xml.EndElement)
	CharData(xml.CharData)
	Comment(xml.Comment)
	ProcInst(xml.ProcInst)
	Directive(xml.Directive)
}

// VoidHandler ignores every event. Embed it to implement only the events you need.
type VoidHandler struct{}

func (h VoidHandler) StartDocument()                {}
func (h VoidHandler) EndDocument()                  {}
func (h VoidHandler) StartElement(xml.StartElement) {}
func (h VoidHandler) EndElement(xml.EndElement)     {}
func (h VoidHandler) CharData(xml.CharData)         {}
func (h VoidHandler) Comment(xml.Comment)           {}
func (h VoidHandler) ProcInst(xml.ProcInst)         {}
func (h VoidHandler) Directive(xml.Directive)       {}
