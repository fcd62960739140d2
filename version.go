package quill

// Version is the editor version shown in the welcome banner.
const Version = "0.3.1"
