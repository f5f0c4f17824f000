package tui

import "errors"

var (
	ErrMissingServices = errors.New("tui: conversion services are required")
	ErrMissingState    = errors.New("tui: session state is required")
)
