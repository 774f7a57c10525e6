package internal

// Version is the textprep release
const Version = "0.1.0"
