/*
Package resloc provides the namespaced identifier used for every block, item,
texture and model the generator touches, in the canonical `namespace:path`
format, e.g. `dyenamics:block/maroon_wool`.

A missing namespace parses as `minecraft`, matching how the game itself reads
references inside model files.
*/
package resloc
