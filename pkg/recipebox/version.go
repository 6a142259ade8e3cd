package recipebox

// Version is the current version of the recipebox module.
const Version = "1.0.0"
