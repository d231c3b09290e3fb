package editor

//go:generate go tool go-enum --marshal --names

// Named editing action, single entry point used by scripted and interactive
// front-ends.
// ENUM(insert, delete, move, reorder, copy, cut, paste, duplicate, select, select_cell, toggle_style, toggle_cell_style, set_alignment, set_cell_alignment, set_border_preset, set_cell_border_preset, set_font, add_row, remove_row, add_column, remove_column, delete_row, delete_column, toggle_wrap, insert_field, clear_cell, set_text, set_link, set_cell_text, set_cell_link, set_cell_checked, set_image, set_image_size, set_spacer_height)
type Action string
