/*
Package mountpath gives mount points stable, human-readable addresses.

An address is the dot-separated chain of element tag names from the document
root to the element, e.g. `html.body.div[1].button`. A segment carries an
index only when its parent has more than one child element with that tag;
the index counts those siblings from zero.

The package centralizes formatting and parsing of addresses and resolves an
address back to its element.
*/
package mountpath
