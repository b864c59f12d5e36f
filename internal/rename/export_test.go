package rename

// SetRenameFunc swaps the function used to move entries
func (e *Engine) SetRenameFunc(fn func(oldpath, newpath string) error) {
	e.rename = fn
}
