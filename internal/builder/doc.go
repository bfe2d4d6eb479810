/*
Package builder turns an authored graph definition (the format-agnostic
config.GraphDefinition produced by the HCL or YAML loaders) into a live
*graph.Graph, and back.

Construction replays the definition in three phases, each through the public
graph API so that every check the graph performs applies to files as well:

 1. Pass Creation: every pass declaration is instantiated in file order. This
    fixes the insertion sequence the scheduler uses to break ties.

 2. Linking: every edge declaration is connected. Ports, directions, kinds and
    single-producer inputs are validated here.

 3. Output Marking: every declared output is marked.

The first failing declaration aborts the build; the error names the source
file and the declaration. Definition performs the reverse mapping, so a graph
edited in memory can be written out again with the hcl package.
*/
package builder
