package cheatsheet

// ActionListener is notified when an action happens.
type ActionListener interface {
	ActionPerformed(e ActionEvent)
}

// ActionListenerFunc lets an ordinary function act as an ActionListener.
type ActionListenerFunc func(e ActionEvent)

// ActionPerformed calls f(e).
func (f ActionListenerFunc) ActionPerformed(e ActionEvent) {
	f(e)
}
