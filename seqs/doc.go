/*
Package seqs is a small toolkit for Go iterators (iter.Seq), sized to what
lazy sequence expressions need:

  - **Combination**: [Concat], [FlatMap] — the backbone of the lens/views
    generator-comprehension builder, which flattens literal runs and
    embedded streams into one lazy iterator.
  - **Transformation**: [Map], [Filter], [Reduce].
  - **Flow Control**: [Take], [Skip].
  - **Generation**: [Range], [Repeat].
  - **Sinks**: [First], [Last], [Count].

Everything here is lazy and single-pass: nothing is consumed until the
resulting iterator is ranged over, and nothing is buffered.
*/
package seqs
